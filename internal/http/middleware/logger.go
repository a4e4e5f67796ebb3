package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"busline/internal/logger"
)

// Logger prints one line per request including request_id when available.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		reqID := GetRequestID(c)
		status := c.Writer.Status()

		line := fmt.Sprintf("request_id=%s method=%s path=%s status=%d latency_ms=%.3f ip=%s",
			reqID,
			c.Request.Method,
			c.Request.URL.Path,
			status,
			float64(latency.Microseconds())/1000.0,
			c.ClientIP(),
		)

		switch {
		case status >= 500:
			log.Error("http", line)
		case status >= 400:
			log.Warn("http", line)
		default:
			log.Info("http", line)
		}
	}
}
