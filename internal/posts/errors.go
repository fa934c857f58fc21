package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for post operations
var (
	// ErrNotFound is returned when a post lookup by id yields nothing.
	ErrNotFound = errors.New("post not found")

	// ErrNotFoundOrForbidden is returned when a conditional mutation
	// matched zero rows: the id does not exist or the post is not owned
	// by the caller. The two cases are indistinguishable on purpose.
	ErrNotFoundOrForbidden = errors.New("post not found or not owned by caller")
)

// ValidationError represents a payload that failed the shape check.
// The Field/Message detail stays server-side; clients get a generic message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// StoreError wraps a failure of the persistence collaborator, including
// an expired per-call deadline.
type StoreError struct {
	Op  string // e.g. "create", "list"
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// IsStoreError checks if error is a store failure
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
