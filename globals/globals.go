package globals

import "errors"

// Sentinel errors shared across the feature controllers. Handlers translate
// these to HTTP statuses; inside the engine they are compared with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// Context keys
type ContextKey string

const RequestIDKey ContextKey = "requestId"
