package api

import (
	"encoding/json"
	"net/http"
	"time"

	"campushub/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// HealthCheckHandler handles GET /healthCheck. db is nil in fallback
// mode; the store is then process-local and always healthy.
func HealthCheckHandler(db *sqlx.DB, mode string, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]entities.ServiceStatus)

		if db != nil {
			pgStatus := "ok"
			pgDetails := "Postgres Connected"
			if err := db.Ping(); err != nil {
				pgStatus = "down"
				pgDetails = err.Error()
			}
			services["postgres"] = entities.ServiceStatus{
				Status:  pgStatus,
				Details: pgDetails,
			}
		} else {
			services["store"] = entities.ServiceStatus{
				Status:  "ok",
				Details: "In-memory fallback store",
			}
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		uptime := time.Since(upSince).Round(time.Second).String()

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			Mode:     mode,
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
