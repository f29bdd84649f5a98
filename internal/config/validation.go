package config

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/Masterminds/sprig/v3"

	"github.com/giantswarm/deptree/internal/formatting"
	"github.com/giantswarm/deptree/pkg/logging"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// Append records err if it is a ValidationError (or a collection of them);
// other errors are recorded by message under field.
func (ve *ValidationErrors) Append(field string, err error) {
	switch e := err.(type) {
	case nil:
		return
	case ValidationError:
		*ve = append(*ve, e)
	case ValidationErrors:
		*ve = append(*ve, e...)
	default:
		ve.Add(field, e.Error())
	}
}

// ValidateRequired checks if a required string field is not empty
func ValidateRequired(field, value, entityType string) error {
	if strings.TrimSpace(value) == "" {
		return ValidationError{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf("is required for %s", entityType),
		}
	}
	return nil
}

// ValidateOneOf checks if a value is in a list of allowed values
func ValidateOneOf(field, value string, allowed []string) error {
	for _, allowedValue := range allowed {
		if value == allowedValue {
			return nil
		}
	}
	return ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	}
}

// ValidateUnitName checks that a unit name can be typed as a single shell
// argument: non-empty and free of whitespace.
func ValidateUnitName(field, name string) error {
	if err := ValidateRequired(field, name, "unit"); err != nil {
		return err
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return ValidationError{
			Field:   field,
			Value:   name,
			Message: "cannot contain whitespace",
		}
	}
	return nil
}

// Validate checks every field and returns all problems found.
func (c Config) Validate() error {
	var errs ValidationErrors

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs.Add("logLevel", err.Error(), c.LogLevel)
	}
	if c.Output != "" {
		errs.Append("output", ValidateOneOf("output", c.Output, formatting.FormatNames()))
	}

	if c.Prompt != "" {
		if _, err := template.New("prompt").Funcs(sprig.TxtFuncMap()).Parse(c.Prompt); err != nil {
			errs.Add("prompt", fmt.Sprintf("is not a valid template: %v", err), c.Prompt)
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
