package api

import (
	"net/http"

	"github.com/petlink/petlink-api/internal/api/middleware"
	"github.com/petlink/petlink-api/internal/api/shared"
	"github.com/petlink/petlink-api/internal/service/booking"
)

// AppointmentHandler handles the appointment endpoints. All routes require
// authentication; the booking service scopes everything to the actor.
type AppointmentHandler struct {
	booking booking.Service
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(b booking.Service) *AppointmentHandler {
	return &AppointmentHandler{booking: b}
}

// List handles GET /api/appointments.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	list, err := h.booking.List(r.Context(), actor)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, list)
}

// Get handles GET /api/appointments/{id}.
func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	appt, err := h.booking.Get(r.Context(), actor, id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, appt)
}

// Create handles POST /api/appointments.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req booking.CreateInput
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	appt, err := h.booking.Create(r.Context(), actor, req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, appt)
}

// Update handles PATCH /api/appointments/{id}.
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var patch booking.Patch
	if err := shared.DecodeJSON(r, &patch); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	appt, err := h.booking.Update(r.Context(), actor, id, patch)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, appt)
}

// Delete handles DELETE /api/appointments/{id}.
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.booking.Delete(r.Context(), actor, id); err != nil {
		HandleServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
