package servehttp

import (
	"net/http"

	"opsconsole/common"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiting rejects requests beyond the given rate with 429. The console
// is a single-user tool; the limiter guards against runaway clients, not
// load.
func RateLimiting(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				&common.ErrorBody{Code: "common.too_many_requests", Message: "too many requests"})
			return
		}
		c.Next()
	}
}
