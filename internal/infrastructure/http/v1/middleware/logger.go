package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"metaforms/pkg/logger"
)

// Logger middleware logs HTTP requests with timing and status,
// and puts the request logger into the request context.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		reqLog := log.WithContext(c.Request.Context())
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), log))

		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
		}
		if errs := c.Errors.ByType(gin.ErrorTypePrivate).String(); errs != "" {
			fields = append(fields, "error", errs)
		}

		switch {
		case status >= 500:
			reqLog.Errorw("http request", fields...)
		case status >= 400:
			reqLog.Warnw("http request", fields...)
		default:
			reqLog.Infow("http request", fields...)
		}
	}
}
