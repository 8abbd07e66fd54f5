// Package forms maps binding/validation failures onto per-field messages for
// template re-rendering.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors holds validation messages keyed by form field name.
type Errors map[string]string

// Add records a message for a field, keeping the first message per field.
func (e Errors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// Has reports whether any field has an error.
func (e Errors) Has() bool {
	return len(e) > 0
}

// Get returns the message for a field, or the empty string.
func (e Errors) Get(field string) string {
	return e[field]
}

// FromBindingError converts a Gin binding error into field errors. Validator
// errors become per-field messages; anything else (malformed dates, type
// mismatches) becomes a form-level message under the "__all__" key.
func FromBindingError(err error) Errors {
	formErrors := Errors{}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			formErrors.Add(snakeCase(fieldError.Field()), messageFor(fieldError))
		}
		return formErrors
	}

	// Gin wraps time parsing failures in a plain error mentioning the field
	// is unparseable; surface a generic message on the birthday field since
	// it is the only date input on the form.
	if strings.Contains(err.Error(), "parsing time") {
		formErrors.Add("birthday", "Enter a valid date.")
		return formErrors
	}

	formErrors.Add("__all__", "Please correct the errors below.")
	return formErrors
}

// messageFor renders a human-readable message for a failed validation tag.
func messageFor(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fieldError.Param())
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", fieldError.Param())
	default:
		return "Enter a valid value."
	}
}

// snakeCase converts a Go struct field name (FirstName) to its form field
// name (first_name).
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
