package testutil

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "investwelth/internal/errors"
)

// AssertAppError checks that err resolves to an *AppError with the expected code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertDecimal compares a stored amount or percentage with a decimal literal.
// Scale is ignored, so 1100 equals 1100.00.
func AssertDecimal(t *testing.T, what string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(Dec(want)) {
		t.Errorf("%s: expected %s, got %s", what, want, got)
	}
}

// AssertRowCount checks how many rows of model's table match the optional
// where clause.
func AssertRowCount(t *testing.T, db *gorm.DB, model interface{}, want int64, where ...interface{}) {
	t.Helper()

	q := db.Model(model)
	if len(where) > 0 {
		q = q.Where(where[0], where[1:]...)
	}
	var got int64
	if err := q.Count(&got).Error; err != nil {
		t.Fatalf("failed to count %T rows: %v", model, err)
	}
	if got != want {
		t.Errorf("expected %d %T rows, got %d", want, model, got)
	}
}
