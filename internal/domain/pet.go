package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Species classifies a pet.
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesBird  Species = "bird"
	SpeciesOther Species = "other"
)

// Gender of a pet.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Common validation errors for Pet.
var (
	ErrEmptyPetID        = errors.New("pet ID cannot be empty")
	ErrEmptyPetOwner     = errors.New("pet owner cannot be empty")
	ErrEmptyPetName      = errors.New("pet name cannot be empty")
	ErrInvalidSpecies    = errors.New("species must be one of dog, cat, bird, other")
	ErrInvalidGender     = errors.New("gender must be M or F")
	ErrInvalidBirthDate  = errors.New("birth date must be formatted as YYYY-MM-DD")
	ErrInvalidWeight     = errors.New("weight must be a decimal number > 0")
)

// Pet is a client-owned animal record, strictly scoped to its owner.
// BirthDate, Weight and Photo are optional; Photo is a reference string
// (upload storage is out of scope). Weight is a decimal string in kg.
type Pet struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner"`
	Name           string    `json:"name"`
	Species        Species   `json:"species"`
	Breed          string    `json:"breed"`
	BirthDate      *string   `json:"birth_date"`
	Gender         Gender    `json:"gender"`
	Weight         *string   `json:"weight"`
	Photo          *string   `json:"photo"`
	MedicalHistory string    `json:"medical_history"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewPet creates a Pet owned by the given user. The owner always comes from
// the authenticated caller, never from request input.
func NewPet(ownerID uuid.UUID, name string, species Species, breed string, birthDate *string,
	gender Gender, weight, photo *string, medicalHistory string) (*Pet, error) {
	pet := &Pet{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Name:           name,
		Species:        species,
		Breed:          breed,
		BirthDate:      birthDate,
		Gender:         gender,
		Weight:         weight,
		Photo:          photo,
		MedicalHistory: medicalHistory,
		CreatedAt:      time.Now().UTC(),
	}

	if err := pet.Validate(); err != nil {
		return nil, err
	}
	return pet, nil
}

// Validate checks the Pet's fields.
func (p *Pet) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPetID
	}
	if p.OwnerID == uuid.Nil {
		return ErrEmptyPetOwner
	}
	if p.Name == "" {
		return ErrEmptyPetName
	}
	switch p.Species {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesOther:
	default:
		return ErrInvalidSpecies
	}
	switch p.Gender {
	case GenderMale, GenderFemale:
	default:
		return ErrInvalidGender
	}
	if p.BirthDate != nil {
		if _, err := time.Parse("2006-01-02", *p.BirthDate); err != nil {
			return ErrInvalidBirthDate
		}
	}
	if p.Weight != nil {
		if v, err := parseDecimal(*p.Weight); err != nil || v <= 0 {
			return ErrInvalidWeight
		}
	}
	return nil
}
