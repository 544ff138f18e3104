package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/petlink/petlink-api/internal/domain"
)

// parseIDParam parses the {id} URL parameter as a UUID. On failure it
// writes the error response and returns false.
func parseIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		HandleServiceError(w, r, domain.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}
