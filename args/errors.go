// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package args

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedArgument is matched by every MalformedArgumentError.
	ErrMalformedArgument = errors.New("malformed argument")
	// ErrValidation is matched by every ValidationError.
	ErrValidation = errors.New("validation failed")
)

// MalformedArgumentError is returned when a token cannot be decomposed into
// its expected structure: wrong arity, non-numeric port, missing separator.
type MalformedArgumentError struct {
	Argument string
	Value    string
	Reason   string
}

func (e *MalformedArgumentError) Error() string {
	return fmt.Sprintf("argument --%s: malformed value %q: %s", e.Argument, e.Value, e.Reason)
}

func (e *MalformedArgumentError) Unwrap() error {
	return ErrMalformedArgument
}

// ValidationError is returned when a structurally valid value violates a
// range or cross-field invariant.
type ValidationError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Constraint)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Constraint)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func malformed(argument, value, format string, a ...interface{}) error {
	return &MalformedArgumentError{Argument: argument, Value: value, Reason: fmt.Sprintf(format, a...)}
}

func invalid(field, value, format string, a ...interface{}) error {
	return &ValidationError{Field: field, Value: value, Constraint: fmt.Sprintf(format, a...)}
}

// IsMalformed reports whether err is, or wraps, a MalformedArgumentError.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedArgument)
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
