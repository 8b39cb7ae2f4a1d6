package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"investwelth/internal/analytics"
	apperrors "investwelth/internal/errors"
	"investwelth/internal/middleware"
	"investwelth/internal/models"
)

// TokenIssuer issues access tokens for authenticated users.
type TokenIssuer interface {
	Generate(user *models.User) (string, error)
}

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get("userID")
	if !exists {
		return 0, apperrors.ErrUnauthorized
	}
	id, ok := userID.(uint)
	if !ok || id == 0 {
		return 0, apperrors.ErrUnauthorized
	}
	return id, nil
}

// parsePathID parses a positive integer path parameter.
func parsePathID(c *gin.Context, param string) (uint, error) {
	return parseID(c.Param(param), param)
}

// parseQueryID parses a required positive integer query parameter.
func parseQueryID(c *gin.Context, param string) (uint, error) {
	raw, ok := c.GetQuery(param)
	if !ok || raw == "" {
		return 0, apperrors.WithMessage(apperrors.ErrMissingParameter, param+" is required")
	}
	return parseID(raw, param)
}

func parseID(raw, name string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+name)
	}
	return uint(id), nil
}

// RangeQuery selects the period and bucketing of a performance series.
type RangeQuery struct {
	Period   string `form:"period" binding:"omitempty,period"`
	Interval string `form:"interval" binding:"omitempty,interval"`
}

// bindRange reads period and interval, defaulting to 1M and daily.
func bindRange(c *gin.Context) (analytics.Period, analytics.Interval, error) {
	var q RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "Interval" {
			return "", "", apperrors.ErrInvalidInterval
		}
		return "", "", apperrors.ErrInvalidPeriod
	}
	period, err := analytics.ParsePeriod(q.Period)
	if err != nil {
		return "", "", apperrors.ErrInvalidPeriod
	}
	interval, err := analytics.ParseInterval(q.Interval)
	if err != nil {
		return "", "", apperrors.ErrInvalidInterval
	}
	return period, interval, nil
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
