// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyLogin is returned when a user login is empty.
	ErrEmptyLogin = errors.New("login cannot be empty")

	// ErrLoginTooLong is returned when a user login exceeds 255 characters.
	ErrLoginTooLong = errors.New("login must be at most 255 characters long")

	// ErrEmptyPassword is returned when neither a plaintext nor a hashed
	// password is present on a user.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrPasswordTooLong is returned when a password exceeds bcrypt's
	// 72-byte input limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters long")

	// ErrInvalidRole is returned when a user references a non-positive
	// role ID.
	ErrInvalidRole = errors.New("invalid role ID")

	// ErrEmptySpotName is returned when a vacation spot has no name.
	ErrEmptySpotName = errors.New("vacation spot name cannot be empty")

	// ErrSpotNameTooLong is returned when a vacation spot name exceeds 255
	// characters.
	ErrSpotNameTooLong = errors.New("vacation spot name must be at most 255 characters long")

	// ErrLatitudeOutOfRange is returned when a latitude is outside [-90, 90].
	ErrLatitudeOutOfRange = errors.New("latitude must be between -90 and 90")

	// ErrLongitudeOutOfRange is returned when a longitude is outside [-180, 180].
	ErrLongitudeOutOfRange = errors.New("longitude must be between -180 and 180")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError carries the field that failed validation together with a
// human-readable reason. It wraps a sentinel error so callers can still use
// errors.Is against the taxonomy above.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
