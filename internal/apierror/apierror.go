// Package apierror provides the uniform error envelope for the API.
// All errors returned to clients go through this package so that internal
// detail (store errors, stack traces) never leaks in production.
package apierror

// APIError is the canonical envelope for every 4xx/5xx response:
// {"success": false, "message": "..."}.
type APIError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Detail carries the underlying error text outside production mode.
	Detail string `json:"detail,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Success: false, Message: msg}
}

// NewDetail attaches internal detail to the envelope. Callers must only use
// it when the app is not running in production mode.
func NewDetail(msg, detail string) *APIError {
	return &APIError{Success: false, Message: msg, Detail: detail}
}

// Validation wraps per-field validation failures.
type ValidationError struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Success: false, Message: "Error de validacion", Fields: fields}
}
