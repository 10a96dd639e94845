package core

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching against the typed errors below.
var (
	ErrValidation                = errors.New("validation failed")
	ErrInsufficientData          = errors.New("insufficient data")
	ErrInvalidFilterCoefficients = errors.New("invalid filter coefficients")
)

// ValidationError reports a malformed parameter or input.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

// NewValidationError returns a ValidationError for field.
func NewValidationError(field string, value any, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// Is matches ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// InsufficientDataError reports a signal too short for the analysis window.
type InsufficientDataError struct {
	Length     int
	WindowSize int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %d samples yield no segment of window size %d", e.Length, e.WindowSize)
}

// Is matches ErrInsufficientData.
func (e *InsufficientDataError) Is(target error) bool { return target == ErrInsufficientData }

// InvalidFilterCoefficientsError reports an unusable feedback polynomial.
type InvalidFilterCoefficientsError struct {
	Reason string
}

func (e *InvalidFilterCoefficientsError) Error() string {
	return "invalid filter coefficients: " + e.Reason
}

// Is matches ErrInvalidFilterCoefficients.
func (e *InvalidFilterCoefficientsError) Is(target error) bool {
	return target == ErrInvalidFilterCoefficients
}
