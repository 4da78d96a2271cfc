package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/helloworld/web-app/internal/middleware"
	"github.com/helloworld/web-app/internal/templates"
)

const contentTypeHTML = "text/html; charset=utf-8"

// HTTPError is an HTTP fault raised by a handler. Attach it with c.Error and
// the error middleware turns it into the matching error page.
type HTTPError struct {
	Code   int
	Detail string
}

// NewHTTPError creates an HTTPError. An empty detail defaults to the
// standard status text.
func NewHTTPError(code int, detail string) *HTTPError {
	if detail == "" {
		detail = http.StatusText(code)
	}
	return &HTTPError{Code: code, Detail: detail}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Detail)
}

// ErrorRenderer renders the HTML error page
type ErrorRenderer interface {
	RenderError(page templates.ErrorPage) ([]byte, error)
}

// ErrorHandler writes HTML error pages in place of gin's plain-text defaults
type ErrorHandler struct {
	renderer ErrorRenderer
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(renderer ErrorRenderer) *ErrorHandler {
	return &ErrorHandler{
		renderer: renderer,
	}
}

// Handle dispatches err to the handler for its class. Not-found and
// internal errors get their fixed pages, other HTTP errors the generic page,
// and anything else is treated as an internal error.
func (h *ErrorHandler) Handle(c *gin.Context, err error) {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		h.InternalServerError(c, err)
		return
	}

	switch httpErr.Code {
	case http.StatusNotFound:
		h.NotFound(c)
	case http.StatusInternalServerError:
		h.InternalServerError(c, err)
	default:
		h.HTTPException(c, httpErr)
	}
}

// HTTPException renders the generic error page echoing the status and detail
func (h *ErrorHandler) HTTPException(c *gin.Context, httpErr *HTTPError) {
	title := "Error " + strconv.Itoa(httpErr.Code)
	h.write(c, httpErr.Code, templates.ErrorPage{
		Title:   title,
		Heading: title,
		Message: httpErr.Detail,
	})
}

// NotFound renders the fixed 404 page
func (h *ErrorHandler) NotFound(c *gin.Context) {
	h.write(c, http.StatusNotFound, templates.ErrorPage{
		Title:   "Page Not Found",
		Heading: "404 - Page Not Found",
		Message: "The requested page could not be found.",
	})
}

// InternalServerError renders the fixed 500 page. err is logged, never shown.
func (h *ErrorHandler) InternalServerError(c *gin.Context, err error) {
	log.WithFields(log.Fields{
		"request_id": c.GetString(middleware.RequestIDKey),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"error":      err,
	}).Error("request failed")

	h.write(c, http.StatusInternalServerError, templates.ErrorPage{
		Title:   "Internal Server Error",
		Heading: "500 - Internal Server Error",
		Message: "An internal server error occurred.",
	})
}

// Recover is a gin.RecoveryFunc rendering the 500 page for a panicking handler
func (h *ErrorHandler) Recover(c *gin.Context, recovered any) {
	log.WithFields(log.Fields{
		"request_id": c.GetString(middleware.RequestIDKey),
		"panic":      recovered,
		"stack":      string(debug.Stack()),
	}).Error("recovered from panic")

	h.InternalServerError(c, fmt.Errorf("panic: %v", recovered))
}

// NoRoute handles requests no route matched
func (h *ErrorHandler) NoRoute(c *gin.Context) {
	_ = c.Error(NewHTTPError(http.StatusNotFound, ""))
}

// NoMethod handles requests whose path exists under another method
func (h *ErrorHandler) NoMethod(c *gin.Context) {
	_ = c.Error(NewHTTPError(http.StatusMethodNotAllowed, ""))
}

func (h *ErrorHandler) write(c *gin.Context, code int, page templates.ErrorPage) {
	body, err := h.renderer.RenderError(page)
	if err != nil {
		log.WithField("error", err).Error("failed to render error page")
		c.String(code, "%s\n%s", page.Heading, page.Message)
		c.Abort()
		return
	}
	c.Data(code, contentTypeHTML, body)
	c.Abort()
}
