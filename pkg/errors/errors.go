// Package errors defines error values commonly configured on fakes, and the
// errors reported by fixture loading
package errors

import (
	"errors"
	"fmt"
)

// Common failures a test can hand to a fake to simulate the persistence layer
var (
	// ErrItemNotFound simulates a lookup that matched nothing
	ErrItemNotFound = errors.New("item not found")

	// ErrConditionFailed simulates a rejected conditional write
	ErrConditionFailed = errors.New("condition check failed")

	// ErrValidation simulates a record rejected by model validation
	ErrValidation = errors.New("validation failed")

	// ErrConnection simulates a lost connection to the data store
	ErrConnection = errors.New("connection refused")

	// ErrInvalidFixture is returned when a fixture document cannot be used
	ErrInvalidFixture = errors.New("invalid fixture")

	// ErrUnsupportedType is returned when a value has no attribute mapping
	ErrUnsupportedType = errors.New("unsupported type")
)

// FakeError is a detailed error a test can configure on a fake
type FakeError struct {
	Op    string // Operation that failed
	Model string // Model name
	Err   error  // Underlying error
}

// Error implements the error interface
func (e *FakeError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("waterline: %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("waterline: %s %s failed: %v", e.Op, e.Model, e.Err)
}

// Unwrap returns the underlying error
func (e *FakeError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target error
func (e *FakeError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewError creates a new FakeError
func NewError(op, model string, err error) *FakeError {
	return &FakeError{
		Op:    op,
		Model: model,
		Err:   err,
	}
}

// New returns an error that formats as the given text
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsNotFound checks if an error indicates an item was not found
func IsNotFound(err error) bool {
	return errors.Is(err, ErrItemNotFound)
}

// IsConditionFailed checks if an error indicates a condition check failure
func IsConditionFailed(err error) bool {
	return errors.Is(err, ErrConditionFailed)
}
