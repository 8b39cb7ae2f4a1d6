package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "investwelth/internal/errors"
	"investwelth/internal/logger"
)

const exposeDetailsKey = "exposeErrorDetails"

// ErrorDetails marks every request with whether wrapped error text may be
// returned to the client in error.details. Enable it outside production only.
func ErrorDetails(expose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(exposeDetailsKey, expose)
		c.Next()
	}
}

// WriteError writes the standard error body for err. AppErrors keep their
// code, message and status; deadline errors become 504 and anything else a
// generic 500. Internal causes are logged, and echoed in error.details only
// when ErrorDetails(true) is installed.
func WriteError(c *gin.Context, err error) {
	appErr := apperrors.Resolve(err)
	if appErr.Internal != nil {
		logger.Get().Errorw("app error",
			"code", appErr.Code,
			"message", appErr.Message,
			"internal", appErr.Internal.Error(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(requestIDKey),
		)
	}

	body := gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	}
	if appErr.Internal != nil && c.GetBool(exposeDetailsKey) {
		body["details"] = appErr.Internal.Error()
	}
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{"error": body})
}

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into consistent JSON error responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		WriteError(c, c.Errors.Last().Err)
	}
}
