package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mozart-martins/fastapi-ivanova-clothes/pkg/apierror"
)

// Validator wraps go-playground/validator with the domain rules this API
// needs on top of the built-in tags.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names instead of Go struct field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		tag := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return field.Name
		}
		return tag
	})

	// A full name must carry at least two whitespace-separated tokens.
	_ = v.RegisterValidation("fullname", func(fl validator.FieldLevel) bool {
		return len(strings.Fields(fl.Field().String())) >= 2
	})

	return &Validator{validate: v}
}

// Check validates the payload and converts failures into a 422 error
// naming every offending field.
func (v *Validator) Check(payload any) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return apierror.New("VALIDATION_ERROR", "request validation failed", err.Error(), 422)
	}

	fields := make([]apierror.FieldViolation, 0, len(violations))
	for _, violation := range violations {
		fields = append(fields, apierror.FieldViolation{
			Field:   violation.Field(),
			Message: messageFor(violation),
		})
	}

	return apierror.Validation(fields)
}

func messageFor(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "fullname":
		return "must contain at least two names"
	case "min":
		return fmt.Sprintf("must be at least %s characters", violation.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", violation.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(violation.Param(), " ", ", "))
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s validation", violation.Tag())
	}
}
