package api

import (
	"net/http"
	"time"

	"campushub/internal/common"

	"github.com/go-chi/chi/v5"
)

// PendingClubRegistrations handles GET /api/v1/registrations/pending
func (h *Handlers) PendingClubRegistrations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		views, err := h.deps.Services.Directory.PendingClubRegistrations(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", views)
	}
}

// ApproveClubRegistration handles POST /api/v1/registrations/{registrationID}/approve
func (h *Handlers) ApproveClubRegistration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id := chi.URLParam(r, "registrationID")
		reg, err := h.deps.Services.Directory.ApproveClubRegistration(r.Context(), id)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Registration approved", reg)
	}
}

// RejectClubRegistration handles POST /api/v1/registrations/{registrationID}/reject
func (h *Handlers) RejectClubRegistration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id := chi.URLParam(r, "registrationID")
		reg, err := h.deps.Services.Directory.RejectClubRegistration(r.Context(), id)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Registration rejected", reg)
	}
}

// Overview handles GET /api/v1/admin/overview
func (h *Handlers) Overview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		overview, err := h.deps.Services.Directory.Overview(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", overview)
	}
}
