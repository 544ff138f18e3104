// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input fails validation.
	// FieldErrors wraps this so callers can branch with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned on login with an unknown email or a
	// wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPermissionDenied is returned when an authenticated user attempts an
	// operation they are not authorized for.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")
)

// FieldErrors collects validation messages per input field. Validation does
// not fail fast: every invalid field is reported in a single response.
type FieldErrors map[string][]string

// Add appends a message to the given field.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Error implements the error interface.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Unwrap makes errors.Is(err, ErrValidation) true for any FieldErrors value.
func (e FieldErrors) Unwrap() error {
	return ErrValidation
}

// NewFieldError builds a FieldErrors with a single field message.
func NewFieldError(field, message string) FieldErrors {
	fe := FieldErrors{}
	fe.Add(field, message)
	return fe
}
