package api

import (
	"errors"
	"net/http"
	"time"

	"campushub/internal/common"
	"campushub/internal/services"
	"campushub/internal/store"
)

// respondServiceError maps the service error taxonomy onto HTTP status
// codes. Backend failures keep their retryable/permanent distinction:
// a reachable-but-broken backend is 500, an unreachable one is 502.
func respondServiceError(w http.ResponseWriter, initTime time.Time, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		common.RespondError(w, initTime, err, "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, services.ErrEmailTaken):
		common.RespondError(w, initTime, err, "Email already registered", http.StatusConflict)
	case errors.Is(err, services.ErrNoRegistrants):
		common.RespondError(w, initTime, err, "No registrations found for this event", http.StatusNotFound)
	case errors.Is(err, store.ErrNotFound):
		common.RespondError(w, initTime, err, "Not found", http.StatusNotFound)
	case errors.Is(err, store.ErrConflict):
		common.RespondError(w, initTime, err, "Conflicting state", http.StatusConflict)
	default:
		var backendErr *store.BackendError
		if errors.As(err, &backendErr) && backendErr.Retryable {
			common.RespondError(w, initTime, err, "Backend temporarily unavailable", http.StatusBadGateway)
			return
		}
		common.RespondError(w, initTime, err, "Internal server error", http.StatusInternalServerError)
	}
}
