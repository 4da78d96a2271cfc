package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helloworld/web-app/internal/templates"
)

// HelloMessage is substituted into the hello page
const HelloMessage = "Hello World"

// PageRenderer renders a named page template
type PageRenderer interface {
	RenderPage(name string, data any) ([]byte, error)
}

// PageHandler serves the HTML pages
type PageHandler struct {
	renderer PageRenderer
}

// NewPageHandler creates a new page handler
func NewPageHandler(renderer PageRenderer) *PageHandler {
	return &PageHandler{
		renderer: renderer,
	}
}

// Hello handles GET /
// @Summary Hello World page
// @Description Renders the Hello World HTML page
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML document"
// @Failure 500 {string} string "Internal server error page"
// @Router / [get]
func (h *PageHandler) Hello(c *gin.Context) {
	body, err := h.renderer.RenderPage(templates.HelloPage, templates.PageData{Message: HelloMessage})
	if err != nil {
		_ = c.Error(fmt.Errorf("rendering hello page: %w", err))
		return
	}

	c.Data(http.StatusOK, contentTypeHTML, body)
}
