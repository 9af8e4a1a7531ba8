package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"metaforms/internal/infrastructure/metrics"
)

// unmatchedRoute labels requests that hit no registered route,
// so arbitrary paths cannot blow up label cardinality.
const unmatchedRoute = "unmatched"

// Metrics middleware records request count, latency and in-flight requests.
// A request that panics before writing is counted as 500, the status Recovery sends.
func Metrics(m *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.RequestsInFlight.Inc()

		panicked := true
		defer func() {
			m.RequestsInFlight.Dec()

			status := c.Writer.Status()
			if panicked && !c.Writer.Written() {
				status = http.StatusInternalServerError
			}
			route := c.FullPath()
			if route == "" {
				route = unmatchedRoute
			}
			m.ObserveRequest(c.Request.Method, route, status, time.Since(start))
		}()

		c.Next()
		panicked = false
	}
}
