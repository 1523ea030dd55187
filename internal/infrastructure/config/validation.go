package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is a wrapper around go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance with custom validation rules
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterStructValidation(validateDatabaseConfig, DatabaseConfig{})

	return &Validator{
		validate: v,
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func (v *Validator) formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Field(),
				e.Tag(),
				e.Value(),
			))
		}
		return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return err
}

// validateDatabaseConfig requires a postgres target: either a URL or a host and database name
func validateDatabaseConfig(sl validator.StructLevel) {
	db := sl.Current().Interface().(DatabaseConfig)
	if db.Type != "postgres" || db.URL != "" {
		return
	}
	if db.Host == "" {
		sl.ReportError(db.Host, "Host", "Host", "required_without_url", "")
	}
	if db.Name == "" {
		sl.ReportError(db.Name, "Name", "Name", "required_without_url", "")
	}
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	v := NewValidator()
	return v.Validate(cfg)
}
