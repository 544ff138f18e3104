package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/petlink/petlink-api/internal/domain"
)

// UserStore defines the interface for user account persistence.
type UserStore interface {
	// Create saves a new user. The user's HashedPassword must already be set;
	// the store never sees plaintext credentials.
	// Returns ErrEmailExists if the normalized email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by normalized email.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Delete removes a user. Owned profile, pets, services and
	// appointments-as-client go with it (FK cascade).
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a UserStore bound to the given transaction, so the
	// user row and its profile row can be created atomically.
	WithTx(tx *sql.Tx) UserStore
}
