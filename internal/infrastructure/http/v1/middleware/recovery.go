// Package middleware provides HTTP middleware components.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"metaforms/internal/core/apperror"
	appctx "metaforms/internal/core/context"
	"metaforms/pkg/logger"
)

// Recovery middleware recovers from panics and returns 500 error.
// Logs stack trace but never exposes internal details to client.
// Must run outside ErrorHandler.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					"error", err,
					"stack", string(debug.Stack()),
				)

				appErr := apperror.NewInternal(fmt.Errorf("panic: %v", err)).
					WithDetail("request_id", appctx.GetRequestID(c.Request.Context()))
				_ = c.Error(appErr)
				c.Abort()

				// Inner middleware unwound with the panic; render here.
				if !c.Writer.Written() {
					writeError(c, appErr)
				}
			}
		}()
		c.Next()
	}
}
