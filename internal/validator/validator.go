// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"investwelth/internal/analytics"
	"investwelth/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("period", validatePeriod)
		_ = v.RegisterValidation("interval", validateInterval)
		_ = v.RegisterValidation("risk_profile", validateRiskProfile)
	}
}

func validatePeriod(fl validator.FieldLevel) bool {
	_, err := analytics.ParsePeriod(fl.Field().String())
	return err == nil
}

func validateInterval(fl validator.FieldLevel) bool {
	_, err := analytics.ParseInterval(fl.Field().String())
	return err == nil
}

func validateRiskProfile(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.RiskProfileLow, models.RiskProfileModerate, models.RiskProfileHigh:
		return true
	}
	return false
}
