package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Service.
var (
	ErrEmptyServiceID       = errors.New("service ID cannot be empty")
	ErrEmptyServiceProvider = errors.New("service provider cannot be empty")
	ErrEmptyServiceName     = errors.New("service name cannot be empty")
	ErrInvalidPrice         = errors.New("price must be a decimal number >= 0")
	ErrInvalidDuration      = errors.New("duration must be a positive number of minutes")
)

// Service is a bookable offering owned by one provider. ProviderID is the
// owning provider profile's user ID; it is always taken from the acting
// user's profile, never from request input. Deactivation is a soft flag that
// removes the service from the public catalog without deleting it.
type Service struct {
	ID          uuid.UUID `json:"id"`
	ProviderID  uuid.UUID `json:"provider"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Duration    int       `json:"duration"` // minutes
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewService creates an active Service owned by the given provider.
func NewService(providerID uuid.UUID, name, description, price string, duration int) (*Service, error) {
	service := &Service{
		ID:          uuid.New(),
		ProviderID:  providerID,
		Name:        name,
		Description: description,
		Price:       price,
		Duration:    duration,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}

	if err := service.Validate(); err != nil {
		return nil, err
	}
	return service, nil
}

// Validate checks the Service's fields.
func (s *Service) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptyServiceID
	}
	if s.ProviderID == uuid.Nil {
		return ErrEmptyServiceProvider
	}
	if s.Name == "" {
		return ErrEmptyServiceName
	}
	if v, err := parseDecimal(s.Price); err != nil || v < 0 {
		return ErrInvalidPrice
	}
	if s.Duration <= 0 {
		return ErrInvalidDuration
	}
	return nil
}
