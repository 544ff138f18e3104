package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/petlink/petlink-api/internal/domain"
)

// AppointmentStore defines the interface for appointment persistence.
//
// Role-differentiated visibility is enforced here, at the data-access
// boundary: ListByClient and ListByProviderUser are distinct queries, not
// post-filters over a shared listing. Reads populate ProviderUserID plus the
// nested service and client details from joins.
type AppointmentStore interface {
	// Create saves a new appointment.
	// Returns ErrInvalidEntity if the referenced service does not exist.
	Create(ctx context.Context, appt *domain.Appointment) error

	// GetByID retrieves an appointment with joined details.
	// Returns ErrAppointmentNotFound if the appointment does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)

	// ListByClient returns appointments booked by the given client,
	// most recent date+time first.
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.Appointment, error)

	// ListByProviderUser returns appointments across all services owned by
	// the given provider user, most recent date+time first.
	ListByProviderUser(ctx context.Context, providerUserID uuid.UUID) ([]*domain.Appointment, error)

	// Update persists date, time, status and notes of an existing
	// appointment. The client reference is immutable.
	// Returns ErrAppointmentNotFound if the appointment does not exist.
	Update(ctx context.Context, appt *domain.Appointment) error

	// Delete removes an appointment.
	// Returns ErrAppointmentNotFound if the appointment does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
