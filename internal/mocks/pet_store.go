package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/store"
)

// MockPetStore implements store.PetStore for testing.
type MockPetStore struct {
	// Function fields for customizable behavior
	CreateFn func(ctx context.Context, pet *domain.Pet) error
	UpdateFn func(ctx context.Context, pet *domain.Pet) error
	DeleteFn func(ctx context.Context, id uuid.UUID) error

	// Data for the default implementation
	Pets map[uuid.UUID]*domain.Pet
}

var _ store.PetStore = (*MockPetStore)(nil)

// NewMockPetStore creates a mock store with initialized defaults.
func NewMockPetStore() *MockPetStore {
	return &MockPetStore{
		Pets: make(map[uuid.UUID]*domain.Pet),
	}
}

// Create implements the PetStore interface.
func (m *MockPetStore) Create(ctx context.Context, pet *domain.Pet) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, pet)
	}
	m.Pets[pet.ID] = pet
	return nil
}

// GetByID implements the PetStore interface.
func (m *MockPetStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	if pet, ok := m.Pets[id]; ok {
		return pet, nil
	}
	return nil, store.ErrPetNotFound
}

// ListByOwner implements the PetStore interface.
func (m *MockPetStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Pet, error) {
	result := []*domain.Pet{}
	for _, pet := range m.Pets {
		if pet.OwnerID == ownerID {
			result = append(result, pet)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Update implements the PetStore interface.
func (m *MockPetStore) Update(ctx context.Context, pet *domain.Pet) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, pet)
	}
	if _, ok := m.Pets[pet.ID]; !ok {
		return store.ErrPetNotFound
	}
	m.Pets[pet.ID] = pet
	return nil
}

// Delete implements the PetStore interface.
func (m *MockPetStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, ok := m.Pets[id]; !ok {
		return store.ErrPetNotFound
	}
	delete(m.Pets, id)
	return nil
}
