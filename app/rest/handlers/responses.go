package handlers

// Shared response types

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// DetailedErrorResponse carries the underlying failure text alongside the
// generic error. Update and delete failures use this shape; list and create
// failures respond with a bare status instead.
type DetailedErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ValidationFailedResponse reports per-field validation failures.
type ValidationFailedResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// SuccessResponse confirms an operation with a human-readable message.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
