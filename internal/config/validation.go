package config

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	if err := cv.validator.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	return validateCrossField(cfg)
}

func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
		return true
	default:
		return false
	}
}

func validateCrossField(cfg *Config) error {
	m := cfg.Model

	if m.HomeAdvantageMin > m.HomeAdvantageMax {
		return fmt.Errorf("home_advantage_min must not exceed home_advantage_max")
	}
	if m.HomeAdvantageBase < m.HomeAdvantageMin || m.HomeAdvantageBase > m.HomeAdvantageMax {
		return fmt.Errorf("home_advantage_base %.2f outside [%.2f, %.2f]",
			m.HomeAdvantageBase, m.HomeAdvantageMin, m.HomeAdvantageMax)
	}

	btsSum := m.BTSPoissonWeight + m.BTSHistoricalWeight + m.BTSLeagueWeight
	if math.Abs(btsSum-1.0) > 1e-9 {
		return fmt.Errorf("bts blend weights must sum to 1.0, got %.4f", btsSum)
	}

	if m.ScorelineMaxGoals > m.MaxGoals {
		return fmt.Errorf("scoreline_max_goals must not exceed max_goals")
	}

	if cfg.Archive.Driver == "file" && cfg.Archive.Dir == "" {
		return fmt.Errorf("archive.dir is required for the file driver")
	}
	if cfg.Archive.Driver == "postgres" {
		if cfg.Database.Host == "" || cfg.Database.Name == "" {
			return fmt.Errorf("database host and name are required for the postgres archive driver")
		}
	}

	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	for _, e := range errs {
		return fmt.Errorf("invalid configuration: field %s failed %q validation", e.Namespace(), e.Tag())
	}
	return nil
}
