package apierror

import (
	"fmt"
	"strings"
)

type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type APIError struct {
	Code       string           `json:"code"`
	Message    string           `json:"message"`
	Details    string           `json:"details,omitempty"`
	Fields     []FieldViolation `json:"fields,omitempty"`
	HTTPStatus int              `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			parts = append(parts, f.Field+": "+f.Message)
		}
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, strings.Join(parts, "; "))
	}

	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string, details string, status int) *APIError {
	return &APIError{Code: code, Message: message, Details: details, HTTPStatus: status}
}

// Validation builds a 422 error carrying the offending fields.
func Validation(fields []FieldViolation) *APIError {
	return &APIError{
		Code:       "VALIDATION_ERROR",
		Message:    "request validation failed",
		Fields:     fields,
		HTTPStatus: 422,
	}
}
