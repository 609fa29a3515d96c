package api

import (
	"net/http"
	"time"

	"campushub/internal/auth"
	"campushub/internal/common"
)

// Notifications handles GET /api/v1/notifications
func (h *Handlers) Notifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		feed, err := h.deps.Services.Notifications.For(r.Context(), claims)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", feed)
	}
}
