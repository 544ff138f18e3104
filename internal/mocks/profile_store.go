package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/store"
)

// MockProfileStore implements store.ProfileStore for testing.
type MockProfileStore struct {
	// Function fields for customizable behavior
	CreateProviderFn func(ctx context.Context, profile *domain.ProviderProfile) error
	CreateClientFn   func(ctx context.Context, profile *domain.ClientProfile) error
	RUCExistsFn      func(ctx context.Context, ruc string) (bool, error)

	// Data for the default implementation, keyed by user ID
	Providers map[uuid.UUID]*domain.ProviderProfile
	Clients   map[uuid.UUID]*domain.ClientProfile
}

var _ store.ProfileStore = (*MockProfileStore)(nil)

// NewMockProfileStore creates a mock store with initialized defaults.
func NewMockProfileStore() *MockProfileStore {
	return &MockProfileStore{
		Providers: make(map[uuid.UUID]*domain.ProviderProfile),
		Clients:   make(map[uuid.UUID]*domain.ClientProfile),
	}
}

// CreateProvider implements the ProfileStore interface.
func (m *MockProfileStore) CreateProvider(ctx context.Context, profile *domain.ProviderProfile) error {
	if m.CreateProviderFn != nil {
		return m.CreateProviderFn(ctx, profile)
	}
	for _, existing := range m.Providers {
		if existing.RUC == profile.RUC {
			return store.ErrRUCExists
		}
	}
	m.Providers[profile.UserID] = profile
	return nil
}

// CreateClient implements the ProfileStore interface.
func (m *MockProfileStore) CreateClient(ctx context.Context, profile *domain.ClientProfile) error {
	if m.CreateClientFn != nil {
		return m.CreateClientFn(ctx, profile)
	}
	m.Clients[profile.UserID] = profile
	return nil
}

// GetProviderByUserID implements the ProfileStore interface.
func (m *MockProfileStore) GetProviderByUserID(ctx context.Context, userID uuid.UUID) (*domain.ProviderProfile, error) {
	if profile, ok := m.Providers[userID]; ok {
		return profile, nil
	}
	return nil, store.ErrProfileNotFound
}

// GetClientByUserID implements the ProfileStore interface.
func (m *MockProfileStore) GetClientByUserID(ctx context.Context, userID uuid.UUID) (*domain.ClientProfile, error) {
	if profile, ok := m.Clients[userID]; ok {
		return profile, nil
	}
	return nil, store.ErrProfileNotFound
}

// GetForUser implements the ProfileStore interface.
func (m *MockProfileStore) GetForUser(ctx context.Context, user *domain.User) (domain.Profile, error) {
	switch user.Role {
	case domain.RoleProvider:
		if profile, ok := m.Providers[user.ID]; ok {
			return profile, nil
		}
	case domain.RoleClient:
		if profile, ok := m.Clients[user.ID]; ok {
			return profile, nil
		}
	}
	return nil, nil
}

// RUCExists implements the ProfileStore interface.
func (m *MockProfileStore) RUCExists(ctx context.Context, ruc string) (bool, error) {
	if m.RUCExistsFn != nil {
		return m.RUCExistsFn(ctx, ruc)
	}
	for _, profile := range m.Providers {
		if profile.RUC == ruc {
			return true, nil
		}
	}
	return false, nil
}

// WithTx implements the ProfileStore interface.
func (m *MockProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return m
}
