package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/store"
)

// MockServiceStore implements store.ServiceStore for testing.
type MockServiceStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, service *domain.Service) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	ListFn    func(ctx context.Context, filter store.ServiceFilter) ([]*domain.Service, error)
	UpdateFn  func(ctx context.Context, service *domain.Service) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Data for the default implementation
	Services map[uuid.UUID]*domain.Service
}

var _ store.ServiceStore = (*MockServiceStore)(nil)

// NewMockServiceStore creates a mock store with initialized defaults.
func NewMockServiceStore() *MockServiceStore {
	return &MockServiceStore{
		Services: make(map[uuid.UUID]*domain.Service),
	}
}

// Create implements the ServiceStore interface.
func (m *MockServiceStore) Create(ctx context.Context, service *domain.Service) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, service)
	}
	m.Services[service.ID] = service
	return nil
}

// GetByID implements the ServiceStore interface.
func (m *MockServiceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if service, ok := m.Services[id]; ok {
		return service, nil
	}
	return nil, store.ErrServiceNotFound
}

// List implements the ServiceStore interface. Only active services are
// returned, newest first, matching the real store's listing.
func (m *MockServiceStore) List(ctx context.Context, filter store.ServiceFilter) ([]*domain.Service, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	result := []*domain.Service{}
	for _, service := range m.Services {
		if !service.IsActive {
			continue
		}
		if filter.ProviderID != nil && service.ProviderID != *filter.ProviderID {
			continue
		}
		result = append(result, service)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Update implements the ServiceStore interface.
func (m *MockServiceStore) Update(ctx context.Context, service *domain.Service) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, service)
	}
	if _, ok := m.Services[service.ID]; !ok {
		return store.ErrServiceNotFound
	}
	m.Services[service.ID] = service
	return nil
}

// Delete implements the ServiceStore interface.
func (m *MockServiceStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, ok := m.Services[id]; !ok {
		return store.ErrServiceNotFound
	}
	delete(m.Services, id)
	return nil
}
