package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError marks malformed or missing input. Maps to a 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ReferentialIntegrityError marks a foreign id that does not exist in its
// owning table, e.g. a payment pointing at a missing appointment.
type ReferentialIntegrityError struct {
	Entity string
	ID     string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s %s does not exist", e.Entity, e.ID)
}

// LedgerConsistencyError means the atomic payment+ledger write could not be
// completed together. The whole create is rolled back when this is returned.
type LedgerConsistencyError struct {
	Op  string
	Err error
}

func (e *LedgerConsistencyError) Error() string {
	return fmt.Sprintf("ledger write failed during %s: %v", e.Op, e.Err)
}

func (e *LedgerConsistencyError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
