package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/petlink/petlink-api/internal/api"
	apiMiddleware "github.com/petlink/petlink-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.registrationService,
		app.userStore,
		app.profileStore,
		app.jwtService,
		app.passwordVerifier,
	)
	serviceHandler := api.NewServiceHandler(app.catalogService)
	petHandler := api.NewPetHandler(app.petService)
	appointmentHandler := api.NewAppointmentHandler(app.bookingService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register/provider", authHandler.RegisterProvider)
		r.Post("/auth/register/client", authHandler.RegisterClient)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)

		// The catalog is browsable without an account.
		r.Get("/services", serviceHandler.List)
		r.Get("/services/{id}", serviceHandler.Get)

		// Protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandler.Me)

			r.Post("/services", serviceHandler.Create)
			r.Put("/services/{id}", serviceHandler.Update)
			r.Patch("/services/{id}", serviceHandler.Update)
			r.Delete("/services/{id}", serviceHandler.Delete)

			r.Get("/pets", petHandler.List)
			r.Post("/pets", petHandler.Create)
			r.Get("/pets/{id}", petHandler.Get)
			r.Put("/pets/{id}", petHandler.Update)
			r.Patch("/pets/{id}", petHandler.Update)
			r.Delete("/pets/{id}", petHandler.Delete)

			r.Get("/appointments", appointmentHandler.List)
			r.Post("/appointments", appointmentHandler.Create)
			r.Get("/appointments/{id}", appointmentHandler.Get)
			r.Put("/appointments/{id}", appointmentHandler.Update)
			r.Patch("/appointments/{id}", appointmentHandler.Update)
			r.Delete("/appointments/{id}", appointmentHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
