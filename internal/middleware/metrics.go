package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"expense-tracker/pkg/metrics"
)

// Metrics records request durations per route. Uses the route template,
// not the raw path, to keep label cardinality bounded.
func (m Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
