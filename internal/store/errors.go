package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate of
	// a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation or
	// violates a database constraint before being stored.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	ErrUserNotFound        = fmt.Errorf("%w: user", ErrNotFound)
	ErrProfileNotFound     = fmt.Errorf("%w: profile", ErrNotFound)
	ErrServiceNotFound     = fmt.Errorf("%w: service", ErrNotFound)
	ErrPetNotFound         = fmt.Errorf("%w: pet", ErrNotFound)
	ErrAppointmentNotFound = fmt.Errorf("%w: appointment", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrRUCExists indicates a provider profile with the given tax id
	// already exists.
	ErrRUCExists = fmt.Errorf("%w: ruc", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
