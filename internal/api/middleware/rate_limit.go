package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rhuselid/gmcareer/pkg/utils"
	"golang.org/x/time/rate"
)

// RateLimit throttles a route group with one shared token bucket. A
// non-positive limit disables throttling.
func RateLimit(perSecond float64, burst int) gin.HandlerFunc {
	if perSecond <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			utils.SendTooManyRequests(c, "Simulation rate limit exceeded, try again shortly")
			c.Abort()
			return
		}
		c.Next()
	}
}
