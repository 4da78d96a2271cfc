package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/helloworld/web-app/internal/app"
	"github.com/helloworld/web-app/internal/config"
	"github.com/helloworld/web-app/internal/validators"
)

// @title Hello World Web Application
// @version 1.0.0
// @description A simple web application that displays Hello World
// @BasePath /
func main() {
	os.Exit(run())
}

func run() int {
	configureLogging(false)

	settings, err := config.Load()
	if err != nil {
		log.WithField("error", err).Error("invalid configuration")
		return 1
	}
	configureLogging(settings.Debug)

	if settings.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if !validators.IsValidSemanticVersion(settings.AppVersion) {
		log.WithField("app_version", settings.AppVersion).Warn("app version is not a semantic version")
	}

	engine, err := app.New(settings)
	if err != nil {
		log.WithField("error", err).Error("failed to build application")
		return 1
	}

	logBanner(settings)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.NewServer(settings, engine).Run(ctx); err != nil {
		entry := log.WithFields(log.Fields{
			"address": settings.Addr(),
			"error":   err,
		})
		if errors.Is(err, syscall.EADDRINUSE) {
			entry.Error("port is already in use, set " + config.EnvPrefix + "PORT to choose a different port")
		} else {
			entry.Error("server failed")
		}
		return 1
	}

	log.Info("server shutdown complete")
	return 0
}

func configureLogging(debug bool) {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stdout)
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func logBanner(settings *config.Settings) {
	rule := strings.Repeat("=", 50)
	log.Info(rule)
	log.Info(settings.AppName)
	log.Info(rule)
	log.WithFields(log.Fields{
		"app_name":    settings.AppName,
		"app_version": settings.AppVersion,
		"debug":       settings.Debug,
		"url":         settings.URL(),
		"started_at":  validators.FormatUTCTimestamp(time.Now()),
	}).Info("server starting")
	log.Info("press CTRL+C to stop the server")
	log.Info(rule)
}
