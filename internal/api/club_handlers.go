package api

import (
	"net/http"
	"time"

	"campushub/internal/auth"
	"campushub/internal/common"

	"github.com/go-chi/chi/v5"
)

// ListClubs handles GET /api/v1/clubs
func (h *Handlers) ListClubs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		snap, err := h.deps.Services.Directory.Refresh(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", snap.Clubs)
	}
}

// RegisterForClub handles POST /api/v1/clubs/{clubID}/register
func (h *Handlers) RegisterForClub() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		clubID := chi.URLParam(r, "clubID")
		reg, err := h.deps.Services.Directory.RegisterForClub(r.Context(), claims.UserID(), clubID)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Membership requested", reg, http.StatusCreated)
	}
}

// MyMemberships handles GET /api/v1/memberships
func (h *Handlers) MyMemberships() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		views, err := h.deps.Services.Directory.MembershipsFor(r.Context(), claims.UserID())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", views)
	}
}
