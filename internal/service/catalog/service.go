// Package catalog manages the provider-owned service catalog: public
// browsing plus owner-only mutations.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/platform/logger"
	"github.com/petlink/petlink-api/internal/platform/metrics"
	"github.com/petlink/petlink-api/internal/store"
)

// CreateInput is the payload for publishing a service. The owning provider
// is always the authenticated actor.
type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Duration    int    `json:"duration"`
}

// Patch is a partial service update. Nil fields were absent from the
// request. The provider is immutable; a patch naming it is rejected.
type Patch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Duration    *int    `json:"duration"`
	IsActive    *bool   `json:"is_active"`
	Provider    *string `json:"provider"`
}

// Service manages the service catalog.
type Service struct {
	services store.ServiceStore
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewService creates a catalog Service.
func NewService(services store.ServiceStore, m *metrics.Metrics, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		services: services,
		metrics:  m,
		logger:   log.With(slog.String("component", "catalog")),
	}
}

// List returns active services, optionally narrowed to one provider.
// The catalog is public: no actor required.
func (s *Service) List(ctx context.Context, providerID *uuid.UUID) ([]*domain.Service, error) {
	return s.services.List(ctx, store.ServiceFilter{ProviderID: providerID})
}

// Get returns one service by ID. Public, like List.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	return s.services.GetByID(ctx, id)
}

// Create publishes a new service owned by the acting provider.
func (s *Service) Create(ctx context.Context, actor domain.Actor, in CreateInput) (*domain.Service, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if actor.Role != domain.RoleProvider {
		return nil, ErrNotProvider
	}

	fieldErrs := domain.FieldErrors{}
	if in.Name == "" {
		fieldErrs.Add("name", "This field is required.")
	}
	if in.Price == "" {
		fieldErrs.Add("price", "This field is required.")
	}
	if in.Duration <= 0 {
		fieldErrs.Add("duration", "Duration must be a positive number of minutes.")
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	svc, err := domain.NewService(actor.UserID, in.Name, in.Description, in.Price, in.Duration)
	if err != nil {
		if err == domain.ErrInvalidPrice {
			return nil, domain.NewFieldError("price", "Price must be a decimal number greater than or equal to 0.")
		}
		return nil, err
	}

	if err := s.services.Create(ctx, svc); err != nil {
		log.Error("failed to create service",
			slog.String("error", err.Error()),
			slog.String("provider_id", actor.UserID.String()))
		return nil, fmt.Errorf("creating service: %w", err)
	}

	s.metrics.IncServicesCreated()
	log.Info("service created",
		slog.String("service_id", svc.ID.String()),
		slog.String("provider_id", actor.UserID.String()))
	return svc, nil
}

// Update applies a partial update to a service the actor owns.
func (s *Service) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, patch Patch) (*domain.Service, error) {
	svc, err := s.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	fieldErrs := domain.FieldErrors{}
	if patch.Provider != nil {
		fieldErrs.Add("provider", "This field cannot be modified.")
	}
	if patch.Name != nil {
		if *patch.Name == "" {
			fieldErrs.Add("name", "This field may not be blank.")
		} else {
			svc.Name = *patch.Name
		}
	}
	if patch.Description != nil {
		svc.Description = *patch.Description
	}
	if patch.Price != nil {
		svc.Price = *patch.Price
	}
	if patch.Duration != nil {
		svc.Duration = *patch.Duration
	}
	if patch.IsActive != nil {
		svc.IsActive = *patch.IsActive
	}
	if err := svc.Validate(); err != nil {
		switch err {
		case domain.ErrInvalidPrice:
			fieldErrs.Add("price", "Price must be a decimal number greater than or equal to 0.")
		case domain.ErrInvalidDuration:
			fieldErrs.Add("duration", "Duration must be a positive number of minutes.")
		default:
			fieldErrs.Add("non_field_errors", "Invalid input.")
		}
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, fmt.Errorf("updating service: %w", err)
	}
	return svc, nil
}

// Delete removes a service the actor owns.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if _, err := s.loadOwned(ctx, actor, id); err != nil {
		return err
	}
	return s.services.Delete(ctx, id)
}

// loadOwned fetches the service and checks ownership.
func (s *Service) loadOwned(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc.ProviderID != actor.UserID {
		return nil, ErrNotServiceOwner
	}
	return svc, nil
}
