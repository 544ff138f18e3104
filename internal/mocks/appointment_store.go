package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/store"
)

// MockAppointmentStore implements store.AppointmentStore for testing.
type MockAppointmentStore struct {
	// Function fields for customizable behavior
	CreateFn func(ctx context.Context, appt *domain.Appointment) error
	UpdateFn func(ctx context.Context, appt *domain.Appointment) error
	DeleteFn func(ctx context.Context, id uuid.UUID) error

	// Data for the default implementation
	Appointments map[uuid.UUID]*domain.Appointment
}

var _ store.AppointmentStore = (*MockAppointmentStore)(nil)

// NewMockAppointmentStore creates a mock store with initialized defaults.
func NewMockAppointmentStore() *MockAppointmentStore {
	return &MockAppointmentStore{
		Appointments: make(map[uuid.UUID]*domain.Appointment),
	}
}

// Create implements the AppointmentStore interface.
func (m *MockAppointmentStore) Create(ctx context.Context, appt *domain.Appointment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, appt)
	}
	m.Appointments[appt.ID] = appt
	return nil
}

// GetByID implements the AppointmentStore interface.
func (m *MockAppointmentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	if appt, ok := m.Appointments[id]; ok {
		return appt, nil
	}
	return nil, store.ErrAppointmentNotFound
}

// ListByClient implements the AppointmentStore interface.
func (m *MockAppointmentStore) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.Appointment, error) {
	result := []*domain.Appointment{}
	for _, appt := range m.Appointments {
		if appt.ClientID == clientID {
			result = append(result, appt)
		}
	}
	sortAppointments(result)
	return result, nil
}

// ListByProviderUser implements the AppointmentStore interface.
func (m *MockAppointmentStore) ListByProviderUser(ctx context.Context, providerUserID uuid.UUID) ([]*domain.Appointment, error) {
	result := []*domain.Appointment{}
	for _, appt := range m.Appointments {
		if appt.ProviderUserID == providerUserID {
			result = append(result, appt)
		}
	}
	sortAppointments(result)
	return result, nil
}

// Update implements the AppointmentStore interface.
func (m *MockAppointmentStore) Update(ctx context.Context, appt *domain.Appointment) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, appt)
	}
	if _, ok := m.Appointments[appt.ID]; !ok {
		return store.ErrAppointmentNotFound
	}
	m.Appointments[appt.ID] = appt
	return nil
}

// Delete implements the AppointmentStore interface.
func (m *MockAppointmentStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, ok := m.Appointments[id]; !ok {
		return store.ErrAppointmentNotFound
	}
	delete(m.Appointments, id)
	return nil
}

// sortAppointments orders most recent date+time first, matching the real
// store's listing order.
func sortAppointments(appts []*domain.Appointment) {
	sort.Slice(appts, func(i, j int) bool {
		if appts[i].Date != appts[j].Date {
			return appts[i].Date > appts[j].Date
		}
		return appts[i].Time > appts[j].Time
	})
}
