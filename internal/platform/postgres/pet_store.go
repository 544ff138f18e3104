package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/platform/logger"
	"github.com/petlink/petlink-api/internal/store"
)

// PetStore implements store.PetStore using PostgreSQL.
type PetStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPetStore creates a PostgreSQL implementation of store.PetStore.
func NewPetStore(db store.DBTX, log *slog.Logger) *PetStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PetStore{
		db:     db,
		logger: log.With(slog.String("component", "pet_store")),
	}
}

var _ store.PetStore = (*PetStore)(nil)

// Create implements store.PetStore.Create.
func (s *PetStore) Create(ctx context.Context, pet *domain.Pet) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := pet.Validate(); err != nil {
		log.Warn("pet validation failed during create",
			slog.String("error", err.Error()),
			slog.String("pet_id", pet.ID.String()))
		return err
	}

	query := `
		INSERT INTO pets (id, owner_id, name, species, breed, birth_date, gender, weight, photo, medical_history, created_at)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7, $8::numeric, $9, $10, $11)
	`
	_, err := s.db.ExecContext(ctx, query,
		pet.ID,
		pet.OwnerID,
		pet.Name,
		pet.Species,
		pet.Breed,
		pet.BirthDate,
		pet.Gender,
		pet.Weight,
		pet.Photo,
		pet.MedicalHistory,
		pet.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create pet",
			slog.String("error", err.Error()),
			slog.String("pet_id", pet.ID.String()))
		return MapError(err)
	}

	log.Info("pet created",
		slog.String("pet_id", pet.ID.String()),
		slog.String("owner_id", pet.OwnerID.String()))
	return nil
}

const petColumns = `id, owner_id, name, species, breed, birth_date::text, gender, weight::text, photo, medical_history, created_at`

func scanPet(scanner interface{ Scan(dest ...any) error }) (*domain.Pet, error) {
	var pet domain.Pet
	var birthDate, weight, photo sql.NullString
	err := scanner.Scan(
		&pet.ID,
		&pet.OwnerID,
		&pet.Name,
		&pet.Species,
		&pet.Breed,
		&birthDate,
		&pet.Gender,
		&weight,
		&photo,
		&pet.MedicalHistory,
		&pet.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if birthDate.Valid {
		pet.BirthDate = &birthDate.String
	}
	if weight.Valid {
		pet.Weight = &weight.String
	}
	if photo.Valid {
		pet.Photo = &photo.String
	}
	return &pet, nil
}

// GetByID implements store.PetStore.GetByID.
func (s *PetStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE id = $1`
	pet, err := scanPet(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPetNotFound
		}
		return nil, MapError(err)
	}
	return pet, nil
}

// ListByOwner implements store.PetStore.ListByOwner.
func (s *PetStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	pets := []*domain.Pet{}
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, MapError(err)
		}
		pets = append(pets, pet)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return pets, nil
}

// Update implements store.PetStore.Update. The owner reference is immutable
// and not part of the update.
func (s *PetStore) Update(ctx context.Context, pet *domain.Pet) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := pet.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE pets
		SET name = $2, species = $3, breed = $4, birth_date = $5::date, gender = $6,
		    weight = $7::numeric, photo = $8, medical_history = $9
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query,
		pet.ID,
		pet.Name,
		pet.Species,
		pet.Breed,
		pet.BirthDate,
		pet.Gender,
		pet.Weight,
		pet.Photo,
		pet.MedicalHistory,
	)
	if err != nil {
		log.Error("failed to update pet",
			slog.String("error", err.Error()),
			slog.String("pet_id", pet.ID.String()))
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrPetNotFound)
}

// Delete implements store.PetStore.Delete.
func (s *PetStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete pet",
			slog.String("error", err.Error()),
			slog.String("pet_id", id.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrPetNotFound); err != nil {
		return err
	}

	log.Info("pet deleted", slog.String("pet_id", id.String()))
	return nil
}
