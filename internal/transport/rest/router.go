package rest

import (
	"database/sql"
	"log/slog"

	"github.com/frahmantamala/crowdfunding-admin/internal"
	"github.com/frahmantamala/crowdfunding-admin/internal/category"
	"github.com/frahmantamala/crowdfunding-admin/internal/donation"
	"github.com/frahmantamala/crowdfunding-admin/internal/fundraiser"
	"github.com/frahmantamala/crowdfunding-admin/internal/transport/middleware"
	"github.com/frahmantamala/crowdfunding-admin/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// Handlers are the API handlers mounted under the base path. Nil handlers
// leave their routes unregistered.
type Handlers struct {
	Category   *category.Handler
	Fundraiser *fundraiser.Handler
	Donation   *donation.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, cfg internal.ServerConfig, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS(cfg.Origins()))
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.RecoveryMiddleware(logger))

	// Operational routes live outside the API prefix
	router.Get("/ping", healthHandler.pingHandler)
	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/openapi.yml", swagger.YAMLHandler)
	router.Get("/openapi.json", swagger.JSONHandler)
	router.Handle("/swagger/*", swagger.Handler())

	router.Route(cfg.APIBasePath(), func(r chi.Router) {
		if h.Category != nil {
			r.Get("/categories", h.Category.GetCategories)
		}

		if h.Donation != nil {
			r.Post("/donation", h.Donation.CreateDonation)
		}

		if h.Fundraiser != nil {
			r.Get("/active", h.Fundraiser.ListActive)
			r.Get("/search", h.Fundraiser.Search)

			r.Route("/fundraiser", func(fr chi.Router) {
				fr.Post("/", h.Fundraiser.CreateFundraiser)        // POST /fundraiser
				fr.Get("/{id}", h.Fundraiser.GetFundraiserDetails) // GET /fundraiser/:id
				fr.Put("/{id}", h.Fundraiser.UpdateFundraiser)     // PUT /fundraiser/:id
				fr.Delete("/{id}", h.Fundraiser.DeleteFundraiser)  // DELETE /fundraiser/:id
			})

			// Registered last; chi matches the static segments above first.
			r.Get("/{id}", h.Fundraiser.GetFundraiser)
		}
	})
}
