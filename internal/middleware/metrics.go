// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kelvinmfon2025/book-api/internal/metrics"
)

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP
// requests. Requests to /metrics and to any of skipPaths are not recorded,
// which keeps health check traffic out of the lending dashboards.
func Metrics(skipPaths ...string) gin.HandlerFunc {
	skip := map[string]bool{"/metrics": true}
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(c *gin.Context) {
		if skip[c.FullPath()] {
			c.Next()
			return
		}

		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()

		// Unmatched routes share one label so arbitrary URLs cannot blow up
		// cardinality.
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}
