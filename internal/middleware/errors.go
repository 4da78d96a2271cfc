package middleware

import (
	"github.com/gin-gonic/gin"
)

// ErrorDispatcher writes the response for an error raised by a handler
type ErrorDispatcher interface {
	Handle(c *gin.Context, err error)
}

// Errors hands the last error attached to the context to dispatcher once
// the handler chain has finished without writing a response.
func Errors(dispatcher ErrorDispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		dispatcher.Handle(c, c.Errors.Last().Err)
	}
}
