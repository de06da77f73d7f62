package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrNoteNotFound     = errors.New("note not found")
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrUnauthorized  = errors.New("unauthorized")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrInvalidFormat = errors.New("invalid token format")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// External collaborator errors
	ErrAssistantUnavailable = errors.New("assistant unavailable")

	// Upload pipeline is intentionally not built yet
	ErrNotImplemented = errors.New("not implemented")
)

// NewValidationError creates a validation error carrying a caller-facing message.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewNotFoundError creates a not-found error carrying a caller-facing message.
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrNoteNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a bad-request error carrying a caller-facing message.
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewNotImplementedError creates a not-implemented error carrying a
// caller-facing message.
func NewNotImplementedError(message string) error {
	return &CustomError{
		Err:     ErrNotImplemented,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
