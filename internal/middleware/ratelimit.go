package middleware

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "investwelth/internal/errors"
)

// RateLimit caps the process-wide request rate with a token bucket. A
// non-positive rps disables limiting.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	retryAfter := strconv.Itoa(int(math.Ceil(1 / rps)))

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.Header("Retry-After", retryAfter)
			WriteError(c, apperrors.ErrRateLimited)
			return
		}
		c.Next()
	}
}
