package api

import (
	"errors"
	"net/http"

	"github.com/petlink/petlink-api/internal/api/shared"
	"github.com/petlink/petlink-api/internal/domain"
	"github.com/petlink/petlink-api/internal/service/auth"
	"github.com/petlink/petlink-api/internal/service/booking"
	"github.com/petlink/petlink-api/internal/service/catalog"
	"github.com/petlink/petlink-api/internal/service/pets"
	"github.com/petlink/petlink-api/internal/service/registration"
	"github.com/petlink/petlink-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. Keeping
// the mapping in one place stops handlers from leaking internal error types
// to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error. Internal detail stays in the logs.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	case errors.Is(err, booking.ErrNotAppointmentParty):
		return "You are not a party to this appointment"

	case errors.Is(err, catalog.ErrNotServiceOwner):
		return "You do not own this service"

	case errors.Is(err, pets.ErrNotPetOwner):
		return "You do not own this pet"

	case errors.Is(err, catalog.ErrNotProvider):
		return "Only providers can manage services"

	case errors.Is(err, domain.ErrPermissionDenied):
		return "Permission denied"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrProfileNotFound):
		return "Profile not found"
	case errors.Is(err, store.ErrServiceNotFound):
		return "Service not found"
	case errors.Is(err, store.ErrPetNotFound):
		return "Pet not found"
	case errors.Is(err, store.ErrAppointmentNotFound):
		return "Appointment not found"
	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"
	case errors.Is(err, store.ErrRUCExists):
		return "RUC already registered"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, registration.ErrRegistrationFailed):
		return "Registration failed"

	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError converts a service-layer error into the right HTTP
// response. Validation failures render the per-field message map; every
// other error renders the standard error body with a sanitized message.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs domain.FieldErrors
	if errors.As(err, &fieldErrs) {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, fieldErrs)
		return
	}

	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
