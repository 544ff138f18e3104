// Package pets manages the client-owned pet registry. Every read and write
// is scoped to the authenticated owner.
package pets

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/platform/logger"
	"github.com/petlink/petlink-api/internal/store"
)

// CreateInput is the payload for registering a pet. The owner is always
// the authenticated actor.
type CreateInput struct {
	Name           string  `json:"name"`
	Species        string  `json:"species"`
	Breed          string  `json:"breed"`
	BirthDate      *string `json:"birth_date"`
	Gender         string  `json:"gender"`
	Weight         *string `json:"weight"`
	Photo          *string `json:"photo"`
	MedicalHistory string  `json:"medical_history"`
}

// Patch is a partial pet update. Nil fields were absent from the request.
// The owner is immutable; a patch naming it is rejected.
type Patch struct {
	Name           *string `json:"name"`
	Species        *string `json:"species"`
	Breed          *string `json:"breed"`
	BirthDate      *string `json:"birth_date"`
	Gender         *string `json:"gender"`
	Weight         *string `json:"weight"`
	Photo          *string `json:"photo"`
	MedicalHistory *string `json:"medical_history"`
	Owner          *string `json:"owner"`
}

// Service manages the pet registry.
type Service struct {
	pets   store.PetStore
	logger *slog.Logger
}

// NewService creates a pets Service.
func NewService(petStore store.PetStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		pets:   petStore,
		logger: log.With(slog.String("component", "pets")),
	}
}

// List returns the actor's pets.
func (s *Service) List(ctx context.Context, actor domain.Actor) ([]*domain.Pet, error) {
	return s.pets.ListByOwner(ctx, actor.UserID)
}

// Get returns one pet the actor owns.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Pet, error) {
	return s.loadOwned(ctx, actor, id)
}

// Create registers a pet owned by the actor.
func (s *Service) Create(ctx context.Context, actor domain.Actor, in CreateInput) (*domain.Pet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	fieldErrs := domain.FieldErrors{}
	if in.Name == "" {
		fieldErrs.Add("name", "This field is required.")
	}
	if in.Species == "" {
		fieldErrs.Add("species", "This field is required.")
	}
	if in.Gender == "" {
		fieldErrs.Add("gender", "This field is required.")
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	pet, err := domain.NewPet(actor.UserID, in.Name, domain.Species(in.Species), in.Breed,
		in.BirthDate, domain.Gender(in.Gender), in.Weight, in.Photo, in.MedicalHistory)
	if err != nil {
		return nil, fieldErrsForPet(err)
	}

	if err := s.pets.Create(ctx, pet); err != nil {
		log.Error("failed to create pet",
			slog.String("error", err.Error()),
			slog.String("owner_id", actor.UserID.String()))
		return nil, fmt.Errorf("creating pet: %w", err)
	}

	log.Info("pet registered",
		slog.String("pet_id", pet.ID.String()),
		slog.String("owner_id", actor.UserID.String()))
	return pet, nil
}

// Update applies a partial update to a pet the actor owns.
func (s *Service) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, patch Patch) (*domain.Pet, error) {
	pet, err := s.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if patch.Owner != nil {
		return nil, domain.NewFieldError("owner", "This field cannot be modified.")
	}
	if patch.Name != nil {
		pet.Name = *patch.Name
	}
	if patch.Species != nil {
		pet.Species = domain.Species(*patch.Species)
	}
	if patch.Breed != nil {
		pet.Breed = *patch.Breed
	}
	if patch.BirthDate != nil {
		pet.BirthDate = patch.BirthDate
	}
	if patch.Gender != nil {
		pet.Gender = domain.Gender(*patch.Gender)
	}
	if patch.Weight != nil {
		pet.Weight = patch.Weight
	}
	if patch.Photo != nil {
		pet.Photo = patch.Photo
	}
	if patch.MedicalHistory != nil {
		pet.MedicalHistory = *patch.MedicalHistory
	}
	if err := pet.Validate(); err != nil {
		return nil, fieldErrsForPet(err)
	}

	if err := s.pets.Update(ctx, pet); err != nil {
		return nil, fmt.Errorf("updating pet: %w", err)
	}
	return pet, nil
}

// Delete removes a pet the actor owns.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	if _, err := s.loadOwned(ctx, actor, id); err != nil {
		return err
	}
	return s.pets.Delete(ctx, id)
}

// loadOwned fetches the pet and checks ownership.
func (s *Service) loadOwned(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Pet, error) {
	pet, err := s.pets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pet.OwnerID != actor.UserID {
		return nil, ErrNotPetOwner
	}
	return pet, nil
}

// fieldErrsForPet translates domain validation errors into per-field
// messages.
func fieldErrsForPet(err error) error {
	switch err {
	case domain.ErrEmptyPetName:
		return domain.NewFieldError("name", "This field may not be blank.")
	case domain.ErrInvalidSpecies:
		return domain.NewFieldError("species", `Species must be one of "dog", "cat", "bird" or "other".`)
	case domain.ErrInvalidGender:
		return domain.NewFieldError("gender", `Gender must be "M" or "F".`)
	case domain.ErrInvalidBirthDate:
		return domain.NewFieldError("birth_date", "Date has wrong format. Use YYYY-MM-DD.")
	case domain.ErrInvalidWeight:
		return domain.NewFieldError("weight", "Weight must be a decimal number greater than 0.")
	default:
		return err
	}
}
