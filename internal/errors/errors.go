// Package errors provides custom error types for the InvestWelth API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import (
	"context"
	"errors"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Upstream wraps a failed query. The message names what could not be loaded
// and is safe to show to clients. A query cut short by the request deadline
// becomes ErrRequestTimeout instead.
func Upstream(message string, err error) *AppError {
	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(ErrRequestTimeout, err)
	}
	return &AppError{
		Code:       ErrUpstreamData.Code,
		Message:    message,
		StatusCode: ErrUpstreamData.StatusCode,
		Internal:   err,
	}
}

// Resolve returns err as an *AppError. Deadline errors map to
// ErrRequestTimeout and anything else unknown to ErrInternalServer.
func Resolve(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(ErrRequestTimeout, err)
	}
	return Wrap(ErrInternalServer, err)
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
	ErrRateLimited        = &AppError{Code: "RATE_LIMITED", Message: "Too many requests", StatusCode: http.StatusTooManyRequests}
	ErrInvalidAPIKey      = &AppError{Code: "INVALID_API_KEY", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
	ErrPipelineDisabled   = &AppError{Code: "PIPELINE_NOT_CONFIGURED", Message: "Pipeline endpoints are not configured", StatusCode: http.StatusServiceUnavailable}
)

// General errors.
var (
	ErrInvalidInput     = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound         = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrUpstreamData     = &AppError{Code: "UPSTREAM_DATA_ERROR", Message: "Failed to fetch data", StatusCode: http.StatusInternalServerError}
	ErrRequestTimeout   = &AppError{Code: "REQUEST_TIMEOUT", Message: "The request took too long to complete", StatusCode: http.StatusGatewayTimeout}
	ErrInternalServer   = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrInvalidPeriod    = &AppError{Code: "INVALID_PERIOD", Message: "period must be one of 1M, 3M, 6M, 1Y, 3Y, MAX", StatusCode: http.StatusBadRequest}
	ErrInvalidInterval  = &AppError{Code: "INVALID_INTERVAL", Message: "interval must be one of daily, monthly, yearly", StatusCode: http.StatusBadRequest}
	ErrMissingParameter = &AppError{Code: "MISSING_PARAMETER", Message: "A required parameter is missing", StatusCode: http.StatusBadRequest}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "User with this email already exists", StatusCode: http.StatusConflict}
)

// Fund errors.
var (
	ErrFundNotFound = &AppError{Code: "FUND_NOT_FOUND", Message: "Fund not found", StatusCode: http.StatusNotFound}
)

// Portfolio errors.
var (
	ErrNoInvestments = &AppError{Code: "NO_INVESTMENTS", Message: "No investments found for this user", StatusCode: http.StatusNotFound}
)
