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

// ServiceStore implements store.ServiceStore using PostgreSQL.
type ServiceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewServiceStore creates a PostgreSQL implementation of store.ServiceStore.
func NewServiceStore(db store.DBTX, log *slog.Logger) *ServiceStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ServiceStore{
		db:     db,
		logger: log.With(slog.String("component", "service_store")),
	}
}

var _ store.ServiceStore = (*ServiceStore)(nil)

// Create implements store.ServiceStore.Create.
func (s *ServiceStore) Create(ctx context.Context, service *domain.Service) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := service.Validate(); err != nil {
		log.Warn("service validation failed during create",
			slog.String("error", err.Error()),
			slog.String("service_id", service.ID.String()))
		return err
	}

	query := `
		INSERT INTO services (id, provider_id, name, description, price, duration, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		service.ID,
		service.ProviderID,
		service.Name,
		service.Description,
		service.Price,
		service.Duration,
		service.IsActive,
		service.CreatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: provider profile %s not found",
				store.ErrInvalidEntity, service.ProviderID)
		}
		log.Error("failed to create service",
			slog.String("error", err.Error()),
			slog.String("service_id", service.ID.String()))
		return MapError(err)
	}

	log.Info("service created",
		slog.String("service_id", service.ID.String()),
		slog.String("provider_id", service.ProviderID.String()))
	return nil
}

const serviceColumns = `id, provider_id, name, description, price::text, duration, is_active, created_at`

func scanService(scanner interface{ Scan(dest ...any) error }) (*domain.Service, error) {
	var service domain.Service
	err := scanner.Scan(
		&service.ID,
		&service.ProviderID,
		&service.Name,
		&service.Description,
		&service.Price,
		&service.Duration,
		&service.IsActive,
		&service.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// GetByID implements store.ServiceStore.GetByID.
func (s *ServiceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	service, err := scanService(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrServiceNotFound
		}
		return nil, MapError(err)
	}
	return service, nil
}

// List implements store.ServiceStore.List. Only active services appear in
// the catalog; deactivated ones stay retrievable by id.
func (s *ServiceStore) List(ctx context.Context, filter store.ServiceFilter) ([]*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE is_active = TRUE`
	args := []any{}
	if filter.ProviderID != nil {
		query += ` AND provider_id = $1`
		args = append(args, *filter.ProviderID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	services := []*domain.Service{}
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, MapError(err)
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return services, nil
}

// Update implements store.ServiceStore.Update. The provider reference is
// immutable and not part of the update.
func (s *ServiceStore) Update(ctx context.Context, service *domain.Service) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := service.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE services
		SET name = $2, description = $3, price = $4::numeric, duration = $5, is_active = $6
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query,
		service.ID,
		service.Name,
		service.Description,
		service.Price,
		service.Duration,
		service.IsActive,
	)
	if err != nil {
		log.Error("failed to update service",
			slog.String("error", err.Error()),
			slog.String("service_id", service.ID.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrServiceNotFound)
}

// Delete implements store.ServiceStore.Delete.
func (s *ServiceStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete service",
			slog.String("error", err.Error()),
			slog.String("service_id", id.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrServiceNotFound); err != nil {
		return err
	}

	log.Info("service deleted", slog.String("service_id", id.String()))
	return nil
}
