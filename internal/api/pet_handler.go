package api

import (
	"net/http"

	"github.com/petlink/petlink-api/internal/api/middleware"
	"github.com/petlink/petlink-api/internal/api/shared"
	"github.com/petlink/petlink-api/internal/service/pets"
)

// PetHandler handles the pet registry endpoints. All routes require
// authentication and only ever touch the actor's own pets.
type PetHandler struct {
	pets *pets.Service
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(p *pets.Service) *PetHandler {
	return &PetHandler{pets: p}
}

// List handles GET /api/pets.
func (h *PetHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	list, err := h.pets.List(r.Context(), actor)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, list)
}

// Get handles GET /api/pets/{id}.
func (h *PetHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	pet, err := h.pets.Get(r.Context(), actor, id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pet)
}

// Create handles POST /api/pets.
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req pets.CreateInput
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	pet, err := h.pets.Create(r.Context(), actor, req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, pet)
}

// Update handles PATCH /api/pets/{id}.
func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var patch pets.Patch
	if err := shared.DecodeJSON(r, &patch); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	pet, err := h.pets.Update(r.Context(), actor, id, patch)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pet)
}

// Delete handles DELETE /api/pets/{id}.
func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.pets.Delete(r.Context(), actor, id); err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
