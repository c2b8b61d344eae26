package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/spotwish/spotwish-api/internal/api"
	apiMiddleware "github.com/spotwish/spotwish-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.roleResolver,
	)
	userHandler := api.NewUserHandler(app.userStore, app.roleResolver)
	spotHandler := api.NewVacationSpotHandler(app.spotStore)
	wishlistHandler := api.NewWishlistHandler(app.wishlistService, app.wishlistStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore, app.roleResolver)

	r.Route("/api", func(r chi.Router) {
		// Credential endpoints (public, rate limited per client IP)
		r.Group(func(r chi.Router) {
			if limit := app.config.Server.AuthRatePerMinute; limit > 0 {
				r.Use(httprate.LimitByIP(limit, time.Minute))
			}
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Refresh is public: it parses the bearer token itself so recently
		// expired tokens can still be exchanged.
		r.Post("/refresh", authHandler.Refresh)

		// Public reads; listing users adapts to the caller when a token is
		// present.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.OptionalAuthenticate)
			r.Get("/users", userHandler.List)
		})
		r.Get("/users/{id}", userHandler.Show)
		r.Get("/vacation_spots", spotHandler.List)
		r.Get("/vacation_spots/{id}", spotHandler.Show)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)

			r.Put("/users/{id}", userHandler.Update)
			r.Delete("/users/{id}", userHandler.Delete)

			r.Post("/vacation_spots", spotHandler.Create)
			r.Put("/vacation_spots/{id}", spotHandler.Update)
			r.Delete("/vacation_spots/{id}", spotHandler.Delete)

			r.Get("/wishlists", wishlistHandler.List)
			r.Post("/wishlists", wishlistHandler.Create)
			r.Get("/wishlists/{id}", wishlistHandler.Show)
			r.Delete("/wishlists/{id}", wishlistHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
