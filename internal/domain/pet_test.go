package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPet(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	strPtr := func(s string) *string { return &s }

	t.Run("creates pet with optionals", func(t *testing.T) {
		t.Parallel()
		pet, err := NewPet(ownerID, "Rex", SpeciesDog, "Labrador",
			strPtr("2020-05-01"), GenderMale, strPtr("28.50"), nil, "vaccinated")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, pet.ID)
		assert.Equal(t, ownerID, pet.OwnerID)
		assert.Equal(t, SpeciesDog, pet.Species)
		assert.Equal(t, "28.50", *pet.Weight)
		assert.Nil(t, pet.Photo)
	})

	t.Run("creates pet without optionals", func(t *testing.T) {
		t.Parallel()
		pet, err := NewPet(ownerID, "Misu", SpeciesCat, "", nil, GenderFemale, nil, nil, "")
		require.NoError(t, err)
		assert.Nil(t, pet.BirthDate)
		assert.Nil(t, pet.Weight)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()
		_, err := NewPet(ownerID, "", SpeciesDog, "", nil, GenderMale, nil, nil, "")
		assert.ErrorIs(t, err, ErrEmptyPetName)
	})

	t.Run("rejects unknown species", func(t *testing.T) {
		t.Parallel()
		_, err := NewPet(ownerID, "Rex", Species("hamster"), "", nil, GenderMale, nil, nil, "")
		assert.ErrorIs(t, err, ErrInvalidSpecies)
	})

	t.Run("rejects unknown gender", func(t *testing.T) {
		t.Parallel()
		_, err := NewPet(ownerID, "Rex", SpeciesDog, "", nil, Gender("X"), nil, nil, "")
		assert.ErrorIs(t, err, ErrInvalidGender)
	})

	t.Run("rejects malformed birth date", func(t *testing.T) {
		t.Parallel()
		_, err := NewPet(ownerID, "Rex", SpeciesDog, "", strPtr("01-05-2020"), GenderMale, nil, nil, "")
		assert.ErrorIs(t, err, ErrInvalidBirthDate)
	})

	t.Run("rejects non-positive weight", func(t *testing.T) {
		t.Parallel()
		_, err := NewPet(ownerID, "Rex", SpeciesDog, "", nil, GenderMale, strPtr("0"), nil, "")
		assert.ErrorIs(t, err, ErrInvalidWeight)
	})
}
