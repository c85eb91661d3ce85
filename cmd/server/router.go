package main

import (
	"net/http"

	"github.com/axiome/firstprinciples-api/internal/api"
	apiMiddleware "github.com/axiome/firstprinciples-api/internal/api/middleware"
	"github.com/axiome/firstprinciples-api/internal/api/shared"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// corsMaxAgeSeconds is how long browsers may cache preflight responses.
const corsMaxAgeSeconds = 300

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           corsMaxAgeSeconds,
	}))

	conceptHandler := api.NewConceptHandler(app.explainer, app.logger)

	r.Get("/", api.Root)
	r.Get("/health", api.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/concepts/message", conceptHandler.Message)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}
