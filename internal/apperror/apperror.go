package apperror

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Handlers map these to HTTP status codes; services and
// repositories wrap them so callers can use errors.Is without string matching.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("conflict")
	ErrUnavailable     = errors.New("store unavailable")
)

// AppError is the single error envelope used by every operation: a kind, a
// human-readable message, and an optional per-field detail map.
type AppError struct {
	Err     error             // sentinel kind
	Message string            // human-readable error message
	Fields  map[string]string // optional: field-level validation detail
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s with ID %s not found", resource, id),
	}
}

func Forbidden(message string) *AppError {
	return &AppError{
		Err:     ErrForbidden,
		Message: message,
	}
}

func Unauthenticated(message string) *AppError {
	return &AppError{
		Err:     ErrUnauthenticated,
		Message: message,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
	}
}

// ValidationFailed reports a single bad field.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Fields:  map[string]string{field: message},
	}
}

// ValidationFields reports several bad fields at once.
func ValidationFields(fields map[string]string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: "Validation failed",
		Fields:  fields,
	}
}

// Unavailable wraps a downstream store failure. The cause stays in the error
// chain for logging; the message shown to callers is generic.
func Unavailable(operation string, cause error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %v", ErrUnavailable, cause),
		Message: fmt.Sprintf("%s failed: internal error", operation),
	}
}
