package metrics

import (
	"time"
)

// RecordHTTPRequest records one request's count and duration. Status codes
// collapse into class labels (2xx..5xx) to keep cardinality bounded.
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.safeExecute("RecordHTTPRequest", func() {
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusClass(statusCode)).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

func statusClass(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

// ShouldSkipEndpoint reports whether a path is excluded from HTTP metrics.
// Probe endpoints exist both at the root and under the configured base path.
func ShouldSkipEndpoint(path string) bool {
	switch path {
	case "/metrics", "/health", "/api/tasks/metrics", "/api/tasks/health":
		return true
	}
	return false
}
