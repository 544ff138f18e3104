package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/petlink/petlink-api/internal/domain"
)

// ProfileStore defines the interface for role-specific profile persistence.
// Exactly one profile row exists per user, matching the user's role.
type ProfileStore interface {
	// CreateProvider saves a new provider profile.
	// Returns ErrRUCExists if the tax id is already registered.
	CreateProvider(ctx context.Context, profile *domain.ProviderProfile) error

	// CreateClient saves a new client profile.
	CreateClient(ctx context.Context, profile *domain.ClientProfile) error

	// GetProviderByUserID retrieves the provider profile for a user.
	// Returns ErrProfileNotFound if the row is missing.
	GetProviderByUserID(ctx context.Context, userID uuid.UUID) (*domain.ProviderProfile, error)

	// GetClientByUserID retrieves the client profile for a user.
	// Returns ErrProfileNotFound if the row is missing.
	GetClientByUserID(ctx context.Context, userID uuid.UUID) (*domain.ClientProfile, error)

	// GetForUser resolves the role-appropriate profile for the user.
	// A missing row yields (nil, nil): absence is not an error here.
	GetForUser(ctx context.Context, user *domain.User) (domain.Profile, error)

	// RUCExists reports whether a provider profile with the tax id exists.
	RUCExists(ctx context.Context, ruc string) (bool, error)

	// WithTx returns a ProfileStore bound to the given transaction.
	WithTx(tx *sql.Tx) ProfileStore
}
