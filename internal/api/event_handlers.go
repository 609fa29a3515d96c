package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"campushub/internal/auth"
	"campushub/internal/common"
	"campushub/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// ListEvents handles GET /api/v1/events
func (h *Handlers) ListEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		snap, err := h.deps.Services.Directory.Refresh(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", snap.Events)
	}
}

// CreateEvent handles POST /api/v1/events
func (h *Handlers) CreateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.CreateEventReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.Name == "" || req.OrganizingClubID == "" || req.Venue == "" || req.Date == "" || req.Time == "" {
			common.RespondError(w, initTime, nil, "All event fields are required", http.StatusBadRequest)
			return
		}

		event, err := h.deps.Services.Directory.CreateEvent(r.Context(), claims.UserID(), req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Event created", event, http.StatusCreated)
	}
}

// RegisterForEvent handles POST /api/v1/events/{eventID}/register
func (h *Handlers) RegisterForEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		eventID := chi.URLParam(r, "eventID")
		reg, err := h.deps.Services.Directory.RegisterForEvent(r.Context(), claims.UserID(), eventID)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Registered for event", reg, http.StatusCreated)
	}
}

// EventRegistrants handles GET /api/v1/events/{eventID}/registrations
func (h *Handlers) EventRegistrants() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		eventID := chi.URLParam(r, "eventID")
		rows, err := h.deps.Services.Directory.RegistrantsForEvent(r.Context(), eventID)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", rows)
	}
}

// ExportRegistrants handles GET /api/v1/events/{eventID}/registrations/export
// and streams the CSV as a download.
func (h *Handlers) ExportRegistrants() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		eventID := chi.URLParam(r, "eventID")
		filename, data, err := h.deps.Services.Export.RegistrantsCSV(r.Context(), eventID)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
