package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/platform/logger"
	"github.com/petlink/petlink-api/internal/store"
)

// ProfileStore implements store.ProfileStore using PostgreSQL. Provider and
// client profiles live in separate tables, both keyed by user id.
type ProfileStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProfileStore creates a PostgreSQL implementation of store.ProfileStore.
func NewProfileStore(db store.DBTX, log *slog.Logger) *ProfileStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ProfileStore{
		db:     db,
		logger: log.With(slog.String("component", "profile_store")),
	}
}

var _ store.ProfileStore = (*ProfileStore)(nil)

// WithTx implements store.ProfileStore.WithTx.
func (s *ProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return &ProfileStore{db: tx, logger: s.logger}
}

// CreateProvider implements store.ProfileStore.CreateProvider.
func (s *ProfileStore) CreateProvider(ctx context.Context, profile *domain.ProviderProfile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := profile.Validate(); err != nil {
		log.Warn("provider profile validation failed",
			slog.String("error", err.Error()),
			slog.String("user_id", profile.UserID.String()))
		return err
	}

	query := `
		INSERT INTO provider_profiles (user_id, business_name, ruc, address, phone, bio, is_verified, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric)
	`
	_, err := s.db.ExecContext(ctx, query,
		profile.UserID,
		profile.BusinessName,
		profile.RUC,
		profile.Address,
		profile.Phone,
		profile.Bio,
		profile.IsVerified,
		profile.Rating,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			// Two unique constraints exist: the user_id primary key and ruc.
			return fmt.Errorf("%w: %v", store.ErrRUCExists, err)
		}
		log.Error("failed to create provider profile",
			slog.String("error", err.Error()),
			slog.String("user_id", profile.UserID.String()))
		return MapError(err)
	}

	log.Info("provider profile created", slog.String("user_id", profile.UserID.String()))
	return nil
}

// CreateClient implements store.ProfileStore.CreateClient.
func (s *ProfileStore) CreateClient(ctx context.Context, profile *domain.ClientProfile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := profile.Validate(); err != nil {
		log.Warn("client profile validation failed",
			slog.String("error", err.Error()),
			slog.String("user_id", profile.UserID.String()))
		return err
	}

	query := `
		INSERT INTO client_profiles (user_id, phone, address, preferences)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query,
		profile.UserID,
		profile.Phone,
		profile.Address,
		profile.Preferences,
	)
	if err != nil {
		log.Error("failed to create client profile",
			slog.String("error", err.Error()),
			slog.String("user_id", profile.UserID.String()))
		return MapError(err)
	}

	log.Info("client profile created", slog.String("user_id", profile.UserID.String()))
	return nil
}

// GetProviderByUserID implements store.ProfileStore.GetProviderByUserID.
func (s *ProfileStore) GetProviderByUserID(ctx context.Context, userID uuid.UUID) (*domain.ProviderProfile, error) {
	query := `
		SELECT user_id, business_name, ruc, address, phone, bio, is_verified, rating::text
		FROM provider_profiles
		WHERE user_id = $1
	`
	var profile domain.ProviderProfile
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.BusinessName,
		&profile.RUC,
		&profile.Address,
		&profile.Phone,
		&profile.Bio,
		&profile.IsVerified,
		&profile.Rating,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProfileNotFound
		}
		return nil, MapError(err)
	}
	return &profile, nil
}

// GetClientByUserID implements store.ProfileStore.GetClientByUserID.
func (s *ProfileStore) GetClientByUserID(ctx context.Context, userID uuid.UUID) (*domain.ClientProfile, error) {
	query := `
		SELECT user_id, phone, address, preferences
		FROM client_profiles
		WHERE user_id = $1
	`
	var profile domain.ClientProfile
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Phone,
		&profile.Address,
		&profile.Preferences,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProfileNotFound
		}
		return nil, MapError(err)
	}
	return &profile, nil
}

// GetForUser implements store.ProfileStore.GetForUser. Roles without a
// profile table (admin) and missing rows both resolve to (nil, nil).
func (s *ProfileStore) GetForUser(ctx context.Context, user *domain.User) (domain.Profile, error) {
	switch user.Role {
	case domain.RoleProvider:
		profile, err := s.GetProviderByUserID(ctx, user.ID)
		if errors.Is(err, store.ErrProfileNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return profile, nil
	case domain.RoleClient:
		profile, err := s.GetClientByUserID(ctx, user.ID)
		if errors.Is(err, store.ErrProfileNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return profile, nil
	default:
		return nil, nil
	}
}

// RUCExists implements store.ProfileStore.RUCExists.
func (s *ProfileStore) RUCExists(ctx context.Context, ruc string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM provider_profiles WHERE ruc = $1)`, ruc,
	).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}
