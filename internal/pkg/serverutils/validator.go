package serverutils

import (
	"errors"
	"fmt"

	"cornell-notepad-be/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks struct-level validate tags and reports every
// failed field, not just the first.
func ValidateRequest(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperror.NewInternal(err)
	}

	fields := make(map[string]apperror.FieldViolation, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = apperror.FieldViolation{
			Message: validationMessage(fe),
		}
	}
	return apperror.NewValidation("Validation failed", fields)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s validation", fe.Field(), fe.Tag())
	}
}
