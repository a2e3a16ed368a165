package middleware

import (
	"strconv"
	"time"

	"applauncher/internal/metrics"

	"github.com/gin-gonic/gin"
)

/**
 * Gin middleware recording request statistics
 * @param {*metrics.HTTP} h - Request statistics to update
 * @description
 * - Counts every request by route and status code
 * - Records the handling time
 * - Status codes >= 400 count as failed requests
 */
func MetricsMiddleware(h *metrics.HTTP) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		status := c.Writer.Status()
		h.Observe(path, strconv.Itoa(status), status >= 400, time.Since(start))
	}
}
