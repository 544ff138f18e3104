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

// AppointmentStore implements store.AppointmentStore using PostgreSQL.
// Reads join services and users so a single query yields the owning
// provider's user id plus the nested details the API responses embed.
type AppointmentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAppointmentStore creates a PostgreSQL implementation of
// store.AppointmentStore.
func NewAppointmentStore(db store.DBTX, log *slog.Logger) *AppointmentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &AppointmentStore{
		db:     db,
		logger: log.With(slog.String("component", "appointment_store")),
	}
}

var _ store.AppointmentStore = (*AppointmentStore)(nil)

// Create implements store.AppointmentStore.Create.
func (s *AppointmentStore) Create(ctx context.Context, appt *domain.Appointment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := appt.Validate(); err != nil {
		log.Warn("appointment validation failed during create",
			slog.String("error", err.Error()),
			slog.String("appointment_id", appt.ID.String()))
		return err
	}

	query := `
		INSERT INTO appointments (id, client_id, service_id, date, time, status, notes, created_at)
		VALUES ($1, $2, $3, $4::date, $5::time, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		appt.ID,
		appt.ClientID,
		appt.ServiceID,
		appt.Date,
		appt.Time,
		appt.Status,
		appt.Notes,
		appt.CreatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: service %s not found",
				store.ErrInvalidEntity, appt.ServiceID)
		}
		log.Error("failed to create appointment",
			slog.String("error", err.Error()),
			slog.String("appointment_id", appt.ID.String()))
		return MapError(err)
	}

	log.Info("appointment created",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("client_id", appt.ClientID.String()),
		slog.String("service_id", appt.ServiceID.String()))
	return nil
}

// appointmentQuery joins services and users; rows scan into a fully
// populated domain.Appointment including nested details.
const appointmentQuery = `
	SELECT a.id, a.client_id, a.service_id, a.date::text, a.time::text, a.status, a.notes, a.created_at,
	       s.provider_id,
	       s.id, s.provider_id, s.name, s.description, s.price::text, s.duration, s.is_active, s.created_at,
	       u.id, u.email, u.role
	FROM appointments a
	JOIN services s ON s.id = a.service_id
	JOIN users u ON u.id = a.client_id
`

func scanAppointment(scanner interface{ Scan(dest ...any) error }) (*domain.Appointment, error) {
	var appt domain.Appointment
	var service domain.Service
	var client domain.UserSummary
	err := scanner.Scan(
		&appt.ID,
		&appt.ClientID,
		&appt.ServiceID,
		&appt.Date,
		&appt.Time,
		&appt.Status,
		&appt.Notes,
		&appt.CreatedAt,
		&appt.ProviderUserID,
		&service.ID,
		&service.ProviderID,
		&service.Name,
		&service.Description,
		&service.Price,
		&service.Duration,
		&service.IsActive,
		&service.CreatedAt,
		&client.ID,
		&client.Email,
		&client.Role,
	)
	if err != nil {
		return nil, err
	}
	appt.ServiceDetails = &service
	appt.ClientDetails = &client
	return &appt, nil
}

// GetByID implements store.AppointmentStore.GetByID.
func (s *AppointmentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	appt, err := scanAppointment(s.db.QueryRowContext(ctx, appointmentQuery+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAppointmentNotFound
		}
		return nil, MapError(err)
	}
	return appt, nil
}

func (s *AppointmentStore) list(ctx context.Context, where string, arg any) ([]*domain.Appointment, error) {
	query := appointmentQuery + where + ` ORDER BY a.date DESC, a.time DESC`
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	appts := []*domain.Appointment{}
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, MapError(err)
		}
		appts = append(appts, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return appts, nil
}

// ListByClient implements store.AppointmentStore.ListByClient.
func (s *AppointmentStore) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.Appointment, error) {
	return s.list(ctx, ` WHERE a.client_id = $1`, clientID)
}

// ListByProviderUser implements store.AppointmentStore.ListByProviderUser.
func (s *AppointmentStore) ListByProviderUser(ctx context.Context, providerUserID uuid.UUID) ([]*domain.Appointment, error) {
	return s.list(ctx, ` WHERE s.provider_id = $1`, providerUserID)
}

// Update implements store.AppointmentStore.Update.
func (s *AppointmentStore) Update(ctx context.Context, appt *domain.Appointment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := appt.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE appointments
		SET date = $2::date, time = $3::time, status = $4, notes = $5
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query,
		appt.ID,
		appt.Date,
		appt.Time,
		appt.Status,
		appt.Notes,
	)
	if err != nil {
		log.Error("failed to update appointment",
			slog.String("error", err.Error()),
			slog.String("appointment_id", appt.ID.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrAppointmentNotFound)
}

// Delete implements store.AppointmentStore.Delete.
func (s *AppointmentStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete appointment",
			slog.String("error", err.Error()),
			slog.String("appointment_id", id.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrAppointmentNotFound); err != nil {
		return err
	}

	log.Info("appointment deleted", slog.String("appointment_id", id.String()))
	return nil
}
