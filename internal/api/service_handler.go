package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/petlink/petlink-api/internal/api/middleware"
	"github.com/petlink/petlink-api/internal/api/shared"
	"github.com/petlink/petlink-api/internal/service/catalog"
)

// ServiceHandler handles the service catalog endpoints. Reads are public;
// writes require an authenticated provider.
type ServiceHandler struct {
	catalog *catalog.Service
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(c *catalog.Service) *ServiceHandler {
	return &ServiceHandler{catalog: c}
}

// List handles GET /api/services. The optional provider_id query parameter
// narrows the catalog to one provider.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	var providerID *uuid.UUID
	if raw := r.URL.Query().Get("provider_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid provider ID")
			return
		}
		providerID = &id
	}

	services, err := h.catalog.List(r.Context(), providerID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, services)
}

// Get handles GET /api/services/{id}.
func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	svc, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, svc)
}

// Create handles POST /api/services.
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req catalog.CreateInput
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	svc, err := h.catalog.Create(r.Context(), actor, req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, svc)
}

// Update handles PATCH /api/services/{id}.
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var patch catalog.Patch
	if err := shared.DecodeJSON(r, &patch); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	svc, err := h.catalog.Update(r.Context(), actor, id, patch)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, svc)
}

// Delete handles DELETE /api/services/{id}.
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.catalog.Delete(r.Context(), actor, id); err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
