package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "investwelth/internal/errors"
)

// PipelineAuthMiddleware creates a Gin middleware that validates the X-API-Key
// header against the configured pipeline API key. With no key configured the
// pipeline routes are disabled.
func PipelineAuthMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			WriteError(c, apperrors.ErrPipelineDisabled)
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			WriteError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}
