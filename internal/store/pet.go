package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/petlink/petlink-api/internal/domain"
)

// PetStore defines the interface for pet registry persistence.
// All reads outside GetByID are owner-scoped; ownership checks on single
// records are the caller's responsibility.
type PetStore interface {
	// Create saves a new pet.
	Create(ctx context.Context, pet *domain.Pet) error

	// GetByID retrieves a pet by ID.
	// Returns ErrPetNotFound if the pet does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error)

	// ListByOwner returns the pets owned by the given user, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Pet, error)

	// Update persists changes to an existing pet.
	// Returns ErrPetNotFound if the pet does not exist.
	Update(ctx context.Context, pet *domain.Pet) error

	// Delete removes a pet.
	// Returns ErrPetNotFound if the pet does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
