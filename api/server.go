/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the frontend

SECURITY NOTE:
  No authentication middleware; the host deployment sits behind the
  company SSO proxy. All endpoints assume an authenticated intranet.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		// Timesheets and leave, per employee
		r.Route("/employees/{id}", func(r chi.Router) {
			r.Get("/timesheet", h.GetTimesheet)
			r.Get("/timesheet/month", h.GetMonthTimesheet)
			r.Post("/entries", h.SaveEntry)
			r.Get("/leaves", h.ListLeaves)
			r.Post("/leaves", h.CreateLeave)
			r.Get("/leaves/balance", h.GetLeaveBalance)
		})

		// Entries by ID
		r.Route("/entries", func(r chi.Router) {
			r.Delete("/{id}", h.DeleteEntry)
			r.Post("/validate", h.BulkValidate)
		})

		// Team rollups
		r.Get("/teams/{managerID}/week", h.GetTeamWeek)

		// Leave decisions
		r.Route("/leaves/{id}", func(r chi.Router) {
			r.Post("/approve", h.ApproveLeave)
			r.Post("/refuse", h.RefuseLeave)
			r.Post("/cancel", h.CancelLeave)
		})

		// Tasks
		r.Route("/tasks/{id}", func(r chi.Router) {
			r.Get("/", h.GetTask)
			r.Get("/metrics", h.GetTaskMetrics)
			r.Post("/status", h.UpdateTaskStatus)
		})

		// Admin
		r.Post("/admin/demo", h.LoadDemo)
	})

	return r
}
