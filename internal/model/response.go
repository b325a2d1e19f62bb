package model

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError names a single offending request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
