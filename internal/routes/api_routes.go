package routes

import (
	"campushub/internal/api"
	"campushub/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, handlers *api.Handlers) {
	r.Route("/api/v1", func(v1 chi.Router) {
		// Public auth endpoints, rate-limited per IP
		v1.Group(func(public chi.Router) {
			public.Use(middleware.RateLimitMiddleware)
			public.Post("/auth/login", handlers.Login())
			public.Post("/auth/signup", handlers.Signup())
		})

		// Everything else requires a live session
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(deps.Tokens, deps.Services.Sessions))

			authed.Post("/auth/logout", handlers.Logout())
			authed.Get("/auth/me", handlers.Me())
			authed.Get("/clubs", handlers.ListClubs())
			authed.Get("/events", handlers.ListEvents())
			authed.Get("/notifications", handlers.Notifications())

			// Student-only group
			authed.Group(func(student chi.Router) {
				student.Use(middleware.IsStudentMiddleware())

				student.Post("/events/{eventID}/register", handlers.RegisterForEvent())
				student.Post("/clubs/{clubID}/register", handlers.RegisterForClub())
				student.Get("/memberships", handlers.MyMemberships())
			})

			// Admin-only group
			authed.Group(func(admin chi.Router) {
				admin.Use(middleware.IsAdminMiddleware())

				admin.Post("/events", handlers.CreateEvent())
				admin.Get("/events/{eventID}/registrations", handlers.EventRegistrants())
				admin.Get("/events/{eventID}/registrations/export", handlers.ExportRegistrants())
				admin.Get("/registrations/pending", handlers.PendingClubRegistrations())
				admin.Post("/registrations/{registrationID}/approve", handlers.ApproveClubRegistration())
				admin.Post("/registrations/{registrationID}/reject", handlers.RejectClubRegistration())
				admin.Get("/admin/overview", handlers.Overview())
			})
		})
	})
}
