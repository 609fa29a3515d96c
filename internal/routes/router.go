package routes

import (
	"net/http"
	"time"

	"campushub/internal/api"
	"campushub/internal/logging"
	"campushub/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RegisterRoutes assembles the Chi router over the initialized
// dependency graph.
func RegisterRoutes(deps *api.Dependencies, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	mode := "remote"
	if !deps.Cfg.DatabaseConfigured() {
		mode = "fallback"
	}
	r.Get("/healthCheck", api.HealthCheckHandler(deps.SqlxDB, mode, upSince))

	handlers := api.NewHandlers(deps)
	RegisterAPIRoutes(r, deps, handlers)

	return r
}
