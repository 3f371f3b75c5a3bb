package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrStatusNotFound is returned when no status row exists for a user
	ErrStatusNotFound = errors.New("user status not found")

	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidStatusType = errors.New("invalid status type")
	ErrInvalidStatusIcon = errors.New("invalid status icon")
	ErrMessageTooLong    = errors.New("status message too long")
	ErrInvalidClearAt    = errors.New("invalid clear at")

	// ErrUniqueConstraintViolation is returned by the store when a second row for the same user is inserted
	ErrUniqueConstraintViolation = errors.New("user status already exists")

	// ErrMissingIdentifier is returned when updating a record that was never inserted
	ErrMissingIdentifier = errors.New("user status has no identifier")

	// ErrStatusConflict is returned when an upsert keeps losing races against concurrent writers
	ErrStatusConflict = errors.New("user status was modified concurrently")
)

// ValidationError describes a rejected client input. It unwraps to one of the
// Err* sentinels above so callers can branch with errors.Is.
type ValidationError struct {
	Kind    error
	Field   string
	Value   string
	Message string
}

// NewValidationError creates a ValidationError
func NewValidationError(kind error, field, value, message string) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Field:   field,
		Value:   value,
		Message: message,
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Reason returns a short label for the failed rule, used as a metrics label
func (e *ValidationError) Reason() string {
	switch {
	case errors.Is(e.Kind, ErrInvalidUserID):
		return "invalid_user_id"
	case errors.Is(e.Kind, ErrInvalidStatusType):
		return "invalid_status_type"
	case errors.Is(e.Kind, ErrInvalidStatusIcon):
		return "invalid_status_icon"
	case errors.Is(e.Kind, ErrMessageTooLong):
		return "message_too_long"
	case errors.Is(e.Kind, ErrInvalidClearAt):
		return "invalid_clear_at"
	default:
		return "unknown"
	}
}

// IsValidationError reports whether err is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// NotFoundError wraps ErrStatusNotFound with the user it was looked up for
func NotFoundError(userID string) error {
	return fmt.Errorf("%w: user %q", ErrStatusNotFound, userID)
}
