package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Rejects strings that are empty once surrounding whitespace is removed
	_ = validate.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// validateStruct validates s against its `validate` tags and reports the
// first failing field as a *ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return WrapError(err, "failed to validate input")
	}

	fe := validationErrors[0]
	return &ValidationError{
		Field:   fieldName(fe.Field()),
		Message: describe(fe),
	}
}

// fieldName lowercases the first letter so "Tags[0]" reads "tags[0]".
func fieldName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "nonblank":
		return "cannot be empty"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "alpha":
		return "must contain only letters"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
