package app

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/helloworld/web-app/docs"
	"github.com/helloworld/web-app/internal/config"
	"github.com/helloworld/web-app/internal/handlers"
	"github.com/helloworld/web-app/internal/middleware"
	"github.com/helloworld/web-app/internal/templates"
)

// Renderer renders both pages and error pages
type Renderer interface {
	handlers.PageRenderer
	handlers.ErrorRenderer
}

// New builds the application, loading templates from settings.TemplatesDir.
func New(settings *config.Settings) (*gin.Engine, error) {
	renderer, err := templates.NewTemplateRenderer(settings.TemplatesDir, settings.Debug)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	log.WithFields(log.Fields{
		"source": renderer.Source(),
		"reload": renderer.Reloading(),
	}).Debug("templates loaded")

	return NewWithRenderer(settings, renderer), nil
}

// NewWithRenderer builds the application around an existing renderer.
func NewWithRenderer(settings *config.Settings, renderer Renderer) *gin.Engine {
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	errorHandler := handlers.NewErrorHandler(renderer)
	pageHandler := handlers.NewPageHandler(renderer)
	healthHandler := handlers.NewHealthHandler(settings)

	engine.Use(middleware.RequestID())
	if settings.Debug {
		engine.Use(middleware.AccessLog(log.StandardLogger()))
	}
	engine.Use(
		gin.CustomRecoveryWithWriter(io.Discard, errorHandler.Recover),
		middleware.Errors(errorHandler),
	)

	engine.GET("/", pageHandler.Hello)
	engine.GET("/health", healthHandler.Health)
	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
	))

	engine.NoRoute(errorHandler.NoRoute)
	engine.NoMethod(errorHandler.NoMethod)

	return engine
}
