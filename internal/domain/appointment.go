package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment.
// Transitions are provider-authority-only and validated against
// statusTransitions; cancelled and completed are terminal.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

// statusTransitions is the authoritative transition table.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:   {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentCancelled, AppointmentCompleted},
	AppointmentCancelled: {},
	AppointmentCompleted: {},
}

// Common validation errors for Appointment.
var (
	ErrEmptyAppointmentID      = errors.New("appointment ID cannot be empty")
	ErrEmptyAppointmentClient  = errors.New("appointment client cannot be empty")
	ErrEmptyAppointmentService = errors.New("appointment service cannot be empty")
	ErrInvalidDate             = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTime             = errors.New("time must be formatted as HH:MM or HH:MM:SS")
	ErrInvalidStatus           = errors.New("invalid appointment status")
)

// Appointment links a client, a service and a time slot. ClientID is
// immutable after creation and always equals the authenticated creator.
// ProviderUserID is the owning provider's user ID, denormalized from the
// service join for authority checks; it never serializes.
type Appointment struct {
	ID             uuid.UUID         `json:"id"`
	ClientID       uuid.UUID         `json:"client"`
	ServiceID      uuid.UUID         `json:"service"`
	Date           string            `json:"date"`
	Time           string            `json:"time"`
	Status         AppointmentStatus `json:"status"`
	Notes          string            `json:"notes"`
	CreatedAt      time.Time         `json:"created_at"`
	ProviderUserID uuid.UUID         `json:"-"`

	// Read-only nested details populated on reads.
	ServiceDetails *Service     `json:"service_details,omitempty"`
	ClientDetails  *UserSummary `json:"client_details,omitempty"`
}

// UserSummary is the public projection of a User embedded in responses.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}

// NewAppointment creates a pending Appointment booked by the given client.
// Status always starts at pending regardless of any requested value.
func NewAppointment(clientID, serviceID uuid.UUID, date, timeOfDay, notes string) (*Appointment, error) {
	appt := &Appointment{
		ID:        uuid.New(),
		ClientID:  clientID,
		ServiceID: serviceID,
		Date:      date,
		Time:      timeOfDay,
		Status:    AppointmentPending,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}

	if err := appt.Validate(); err != nil {
		return nil, err
	}
	return appt, nil
}

// Validate checks the Appointment's fields.
func (a *Appointment) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAppointmentID
	}
	if a.ClientID == uuid.Nil {
		return ErrEmptyAppointmentClient
	}
	if a.ServiceID == uuid.Nil {
		return ErrEmptyAppointmentService
	}
	if err := ValidateAppointmentDate(a.Date); err != nil {
		return err
	}
	if err := ValidateAppointmentTime(a.Time); err != nil {
		return err
	}
	if !isValidAppointmentStatus(a.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// IsValid reports whether the status is one of the known lifecycle states.
func (s AppointmentStatus) IsValid() bool {
	return isValidAppointmentStatus(s)
}

// CanTransitionTo reports whether the status may move to next. Re-asserting
// the current status is not a transition and is rejected.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range statusTransitions[a.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateAppointmentDate checks the YYYY-MM-DD date format.
func ValidateAppointmentDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// ValidateAppointmentTime checks the HH:MM or HH:MM:SS time format.
func ValidateAppointmentTime(timeOfDay string) error {
	if _, err := time.Parse("15:04", timeOfDay); err == nil {
		return nil
	}
	if _, err := time.Parse("15:04:05", timeOfDay); err == nil {
		return nil
	}
	return ErrInvalidTime
}

func isValidAppointmentStatus(status AppointmentStatus) bool {
	switch status {
	case AppointmentPending, AppointmentConfirmed, AppointmentCancelled, AppointmentCompleted:
		return true
	default:
		return false
	}
}
