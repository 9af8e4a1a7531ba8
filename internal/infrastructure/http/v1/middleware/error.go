package middleware

import (
	"github.com/gin-gonic/gin"

	"metaforms/internal/core/apperror"
	appctx "metaforms/internal/core/context"
	"metaforms/pkg/logger"
)

// ErrorHandler middleware transforms errors into consistent JSON responses.
// Hides internal errors from clients while logging full details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		writeError(c, err)
	}
}

// writeError renders err as the JSON error body.
// Errors that are not AppError become INTERNAL_ERROR.
func writeError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	appErr, ok := apperror.AsAppError(err)
	if !ok {
		appErr = apperror.NewInternal(err).
			WithDetail("request_id", appctx.GetRequestID(ctx))
	}
	if appErr.Err != nil {
		logger.Error(ctx, "request error",
			"code", appErr.Code,
			"cause", appErr.Err,
		)
	}

	c.JSON(appErr.HTTPStatus, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"details": appErr.Details,
	})
}
