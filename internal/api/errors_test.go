package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/service/auth"
	"github.com/petlink/petlink-api/internal/service/booking"
	"github.com/petlink/petlink-api/internal/service/catalog"
	"github.com/petlink/petlink-api/internal/service/pets"
	"github.com/petlink/petlink-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"field errors", domain.NewFieldError("name", "This field is required."), http.StatusBadRequest},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid refresh token", auth.ErrInvalidRefreshToken, http.StatusUnauthorized},
		{"permission denied", domain.ErrPermissionDenied, http.StatusForbidden},
		{"not a party", booking.ErrNotAppointmentParty, http.StatusForbidden},
		{"not the owner", pets.ErrNotPetOwner, http.StatusForbidden},
		{"not a provider", catalog.ErrNotProvider, http.StatusForbidden},
		{"not found", store.ErrAppointmentNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading: %w", store.ErrUserNotFound), http.StatusNotFound},
		{"duplicate", store.ErrEmailExists, http.StatusConflict},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, "Invalid credentials"},
		{"expired token", auth.ErrExpiredToken, "Invalid token"},
		{"wrong token type", auth.ErrWrongTokenType, "Invalid refresh token"},
		{"not a party", booking.ErrNotAppointmentParty, "You are not a party to this appointment"},
		{"not service owner", catalog.ErrNotServiceOwner, "You do not own this service"},
		{"not pet owner", pets.ErrNotPetOwner, "You do not own this pet"},
		{"not a provider", catalog.ErrNotProvider, "Only providers can manage services"},
		{"service not found", store.ErrServiceNotFound, "Service not found"},
		{"internal detail hidden", errors.New("pq: connection refused"), "An unexpected error occurred"},
		{"nil", nil, "An unexpected error occurred"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestHandleServiceError(t *testing.T) {
	t.Parallel()

	t.Run("field errors render the raw message map", func(t *testing.T) {
		t.Parallel()

		fieldErrs := domain.FieldErrors{}
		fieldErrs.Add("email", "Enter a valid email address.")
		fieldErrs.Add("password", "This field is required.")

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		HandleServiceError(w, r, fieldErrs)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string][]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []string{"Enter a valid email address."}, body["email"])
		assert.Equal(t, []string{"This field is required."}, body["password"])
	})

	t.Run("other errors render the standard body", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/pets/123", nil)
		HandleServiceError(w, r, fmt.Errorf("loading pet: %w", store.ErrPetNotFound))

		require.Equal(t, http.StatusNotFound, w.Code)

		var body ErrorResponseBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Pet not found", body.Error)
	})
}
