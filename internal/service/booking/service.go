// Package booking implements the appointment engine: creation against the
// service catalog, role-scoped listing, and the status lifecycle.
package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/petlink/petlink-api/internal/domain"
)

// CreateInput is the payload for booking an appointment. The client is
// always the authenticated actor, never taken from the payload.
type CreateInput struct {
	ServiceID uuid.UUID `json:"service"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Notes     string    `json:"notes"`
}

// Patch is a partial appointment update. Nil fields were absent from the
// request; which non-nil fields are acceptable depends on the actor's role.
type Patch struct {
	Date    *string `json:"date"`
	Time    *string `json:"time"`
	Notes   *string `json:"notes"`
	Status  *string `json:"status"`
	Client  *string `json:"client"`
	Service *string `json:"service"`
}

// Service manages appointments on behalf of an authenticated actor.
type Service interface {
	// Create books a new appointment for the actor. The appointment always
	// starts out pending, whatever the caller asked for.
	Create(ctx context.Context, actor domain.Actor, in CreateInput) (*domain.Appointment, error)

	// List returns the appointments visible to the actor: their own
	// bookings for clients, bookings against their services for providers.
	List(ctx context.Context, actor domain.Actor) ([]*domain.Appointment, error)

	// Get returns one appointment. Only the booking client and the
	// provider owning the service may see it.
	Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Appointment, error)

	// Update applies a partial update. Providers may only move the status
	// along the allowed transitions; clients may only reschedule or edit
	// notes while the appointment is still pending.
	Update(ctx context.Context, actor domain.Actor, id uuid.UUID, patch Patch) (*domain.Appointment, error)

	// Delete removes an appointment. Same visibility rule as Get.
	Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error
}
