package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uqpp/uqpp-api/internal/service"
)

// Metrics returns middleware that records request metrics via the metrics
// service. Paths are labeled by route template, not raw URL, to keep label
// cardinality bounded.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
