package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helloworld/web-app/internal/config"
	"github.com/helloworld/web-app/internal/models"
	"github.com/helloworld/web-app/internal/validators"
)

// HealthHandler reports application status
type HealthHandler struct {
	appName    string
	appVersion string
	now        func() time.Time
}

// NewHealthHandler creates a health handler reporting the name and version from settings
func NewHealthHandler(settings *config.Settings) *HealthHandler {
	return &HealthHandler{
		appName:    settings.AppName,
		appVersion: settings.AppVersion,
		now:        time.Now,
	}
}

// Health handles GET /health
// @Summary Health check
// @Description Returns application status, the current time and the application name and version
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := models.HealthResponse{
		Status:     models.HealthStatusHealthy,
		Message:    models.HealthMessage,
		Timestamp:  validators.EpochSeconds(h.now()),
		AppName:    h.appName,
		AppVersion: h.appVersion,
	}

	c.JSON(http.StatusOK, response)
}
