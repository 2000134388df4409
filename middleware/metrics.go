package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"stayease-backend/metrics"
)

// Metrics records request counts and latency per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
