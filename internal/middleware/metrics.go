package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-board-api/internal/metrics"
)

// Metrics returns a middleware that records HTTP metrics
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics.ShouldSkipEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		// Route pattern, not the raw path, to bound label cardinality.
		// FullPath is empty for unmatched routes.
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		m.RecordHTTPRequest(
			c.Request.Method,
			endpoint,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
