package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "tambourine/internal/app/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their environment variable name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("env"); name != "" {
			return name
		}
		return field.Name
	})
	return v
}

// ValidateSettings validates struct tags on Settings and reports every
// offending variable in a single error wrapping ErrInvalidConfig.
func ValidateSettings(s *Settings) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Wrap(err, "settings validation failed")
	}

	problems := make([]string, 0, len(validationErrs))
	for _, fieldError := range validationErrs {
		problems = append(problems, describeFieldError(fieldError))
	}

	return apperrors.Wrap(apperrors.ErrInvalidConfig, strings.Join(problems, "; "))
}

func describeFieldError(fieldError validator.FieldError) string {
	name := fieldError.Field()
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", name, fieldError.Param(), fieldError.Value())
	case "min", "max":
		return fmt.Sprintf("%s must be between 1 and 65535, got %v", name, fieldError.Value())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}
