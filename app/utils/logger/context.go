package logger

import "context"

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
)

// RequestIDFromContext extracts the request ID placed in the context by the
// request ID middleware. Returns an empty string when none is present.
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
