package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"busline/internal/logger"
)

// RateLimit applies a process-wide request budget. Bursts up to one
// second worth of requests are allowed.
func RateLimit(rps float64, log *logger.Logger) gin.HandlerFunc {
	// A fractional rate must still keep a burst of at least one, or the
	// limiter would reject every request.
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			log.Warnf("http", "rate limit exceeded for ip=%s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": "1s",
			})
			return
		}
		c.Next()
	}
}
