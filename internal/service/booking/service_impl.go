package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/platform/logger"
	"github.com/petlink/petlink-api/internal/platform/metrics"
	"github.com/petlink/petlink-api/internal/store"
)

// bookingService is the data-backed Service implementation.
type bookingService struct {
	appointments store.AppointmentStore
	services     store.ServiceStore
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

var _ Service = (*bookingService)(nil)

// NewService creates the appointment engine.
func NewService(
	appointments store.AppointmentStore,
	services store.ServiceStore,
	m *metrics.Metrics,
	log *slog.Logger,
) Service {
	if log == nil {
		log = slog.Default()
	}
	return &bookingService{
		appointments: appointments,
		services:     services,
		metrics:      m,
		logger:       log.With(slog.String("component", "booking")),
	}
}

// Create implements Service.Create.
func (s *bookingService) Create(ctx context.Context, actor domain.Actor, in CreateInput) (*domain.Appointment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	fieldErrs := domain.FieldErrors{}
	if in.ServiceID == uuid.Nil {
		fieldErrs.Add("service", "This field is required.")
	}
	if in.Date == "" {
		fieldErrs.Add("date", "This field is required.")
	} else if err := domain.ValidateAppointmentDate(in.Date); err != nil {
		fieldErrs.Add("date", "Date has wrong format. Use YYYY-MM-DD.")
	}
	if in.Time == "" {
		fieldErrs.Add("time", "This field is required.")
	} else if err := domain.ValidateAppointmentTime(in.Time); err != nil {
		fieldErrs.Add("time", "Time has wrong format. Use HH:MM[:SS].")
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	svc, err := s.services.GetByID(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NewFieldError("service", "Service not found.")
		}
		return nil, fmt.Errorf("looking up service: %w", err)
	}
	if !svc.IsActive {
		return nil, domain.NewFieldError("service", "Service is not active.")
	}

	appt, err := domain.NewAppointment(actor.UserID, svc.ID, in.Date, in.Time, in.Notes)
	if err != nil {
		return nil, err
	}
	appt.ProviderUserID = svc.ProviderID

	if err := s.appointments.Create(ctx, appt); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			return nil, domain.NewFieldError("service", "Service not found.")
		}
		log.Error("failed to create appointment",
			slog.String("error", err.Error()),
			slog.String("client_id", actor.UserID.String()))
		return nil, fmt.Errorf("creating appointment: %w", err)
	}

	s.metrics.IncAppointmentsBooked()
	log.Info("appointment booked",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("service_id", svc.ID.String()))

	return s.appointments.GetByID(ctx, appt.ID)
}

// List implements Service.List. Visibility is enforced at the query: each
// role only ever reads its own slice of the table.
func (s *bookingService) List(ctx context.Context, actor domain.Actor) ([]*domain.Appointment, error) {
	switch actor.Role {
	case domain.RoleClient:
		return s.appointments.ListByClient(ctx, actor.UserID)
	case domain.RoleProvider:
		return s.appointments.ListByProviderUser(ctx, actor.UserID)
	default:
		return []*domain.Appointment{}, nil
	}
}

// Get implements Service.Get.
func (s *bookingService) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Appointment, error) {
	return s.load(ctx, actor, id)
}

// Update implements Service.Update.
func (s *bookingService) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, patch Patch) (*domain.Appointment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	appt, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	var fieldErrs domain.FieldErrors
	switch {
	case actor.UserID == appt.ProviderUserID:
		fieldErrs = applyProviderPatch(appt, patch)
	case actor.UserID == appt.ClientID:
		fieldErrs = applyClientPatch(appt, patch)
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	if err := s.appointments.Update(ctx, appt); err != nil {
		log.Error("failed to update appointment",
			slog.String("error", err.Error()),
			slog.String("appointment_id", id.String()))
		return nil, fmt.Errorf("updating appointment: %w", err)
	}

	log.Info("appointment updated",
		slog.String("appointment_id", id.String()),
		slog.String("status", string(appt.Status)))

	return s.appointments.GetByID(ctx, id)
}

// Delete implements Service.Delete.
func (s *bookingService) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if _, err := s.load(ctx, actor, id); err != nil {
		return err
	}
	return s.appointments.Delete(ctx, id)
}

// load fetches the appointment and checks that the actor is a party to it.
func (s *bookingService) load(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Appointment, error) {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.UserID != appt.ClientID && actor.UserID != appt.ProviderUserID {
		return nil, ErrNotAppointmentParty
	}
	return appt, nil
}

// applyProviderPatch mutates the appointment for a provider update.
// Providers own the status lifecycle and nothing else: any other field in
// the patch is rejected, and the new status must be a legal transition.
func applyProviderPatch(appt *domain.Appointment, patch Patch) domain.FieldErrors {
	fieldErrs := domain.FieldErrors{}
	for field, set := range map[string]bool{
		"date":    patch.Date != nil,
		"time":    patch.Time != nil,
		"notes":   patch.Notes != nil,
		"client":  patch.Client != nil,
		"service": patch.Service != nil,
	} {
		if set {
			fieldErrs.Add(field, "Providers may only update the appointment status.")
		}
	}
	if patch.Status == nil {
		fieldErrs.Add("status", "This field is required.")
		return fieldErrs
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}

	next := domain.AppointmentStatus(*patch.Status)
	if !next.IsValid() {
		fieldErrs.Add("status", fmt.Sprintf("%q is not a valid choice.", *patch.Status))
		return fieldErrs
	}
	if !appt.CanTransitionTo(next) {
		fieldErrs.Add("status", fmt.Sprintf("Cannot transition from %s to %s.", appt.Status, next))
		return fieldErrs
	}
	appt.Status = next
	return fieldErrs
}

// applyClientPatch mutates the appointment for a client update. Clients may
// reschedule or edit notes, only while the appointment is still pending,
// and may never touch the status or reassign parties.
func applyClientPatch(appt *domain.Appointment, patch Patch) domain.FieldErrors {
	fieldErrs := domain.FieldErrors{}
	if patch.Status != nil {
		fieldErrs.Add("status", "Clients cannot change the appointment status.")
	}
	if patch.Client != nil {
		fieldErrs.Add("client", "This field cannot be modified.")
	}
	if patch.Service != nil {
		fieldErrs.Add("service", "This field cannot be modified.")
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}

	if patch.Date == nil && patch.Time == nil && patch.Notes == nil {
		return fieldErrs
	}
	if appt.Status != domain.AppointmentPending {
		fieldErrs.Add("non_field_errors", "Only pending appointments can be modified.")
		return fieldErrs
	}

	if patch.Date != nil {
		if err := domain.ValidateAppointmentDate(*patch.Date); err != nil {
			fieldErrs.Add("date", "Date has wrong format. Use YYYY-MM-DD.")
		} else {
			appt.Date = *patch.Date
		}
	}
	if patch.Time != nil {
		if err := domain.ValidateAppointmentTime(*patch.Time); err != nil {
			fieldErrs.Add("time", "Time has wrong format. Use HH:MM[:SS].")
		} else {
			appt.Time = *patch.Time
		}
	}
	if patch.Notes != nil {
		appt.Notes = *patch.Notes
	}
	return fieldErrs
}
