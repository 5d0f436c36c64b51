package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned by Authenticate for a bad username or
// password; callers must not learn which of the two was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ValidationError reports malformed input. It is raised before any write,
// so the store is guaranteed untouched.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// NotFoundError reports an operation targeting a row that does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found with ID %d", e.Entity, e.ID)
}

// ConflictError reports a business-rule violation discovered during the
// write itself, e.g. selling more stock than is on hand.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func insufficientStock(itemID uint, requested, available int) *ConflictError {
	return &ConflictError{
		Message: fmt.Sprintf("insufficient stock for item ID %d: requested %d, available %d",
			itemID, requested, available),
	}
}

// InfrastructureError wraps a failure of the underlying store (constraint
// violation, lost connection). Never produced for expected domain outcomes.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// isDomainError reports whether err is an expected, user-facing outcome
// that should be surfaced verbatim rather than wrapped as infrastructure.
func isDomainError(err error) bool {
	var ve *ValidationError
	var nf *NotFoundError
	var ce *ConflictError
	return errors.As(err, &ve) || errors.As(err, &nf) || errors.As(err, &ce) ||
		errors.Is(err, ErrInvalidCredentials)
}
