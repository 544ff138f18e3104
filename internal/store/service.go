package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/petlink/petlink-api/internal/domain"
)

// ServiceFilter narrows a catalog listing. A nil ProviderID lists every
// provider's active services.
type ServiceFilter struct {
	ProviderID *uuid.UUID
}

// ServiceStore defines the interface for service catalog persistence.
type ServiceStore interface {
	// Create saves a new service.
	Create(ctx context.Context, service *domain.Service) error

	// GetByID retrieves a service by ID, active or not.
	// Returns ErrServiceNotFound if the service does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)

	// List returns active services, newest first, optionally filtered.
	List(ctx context.Context, filter ServiceFilter) ([]*domain.Service, error)

	// Update persists changes to an existing service.
	// Returns ErrServiceNotFound if the service does not exist.
	Update(ctx context.Context, service *domain.Service) error

	// Delete removes a service.
	// Returns ErrServiceNotFound if the service does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
