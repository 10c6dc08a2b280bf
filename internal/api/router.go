package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rgalvan/jobtracker-api/internal/api/handlers"
	"github.com/rgalvan/jobtracker-api/internal/api/middleware"
	"github.com/rgalvan/jobtracker-api/internal/config"
	"github.com/rgalvan/jobtracker-api/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigin))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	appHandler := handlers.NewApplicationHandler(services.Application)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes. Logout is public so tearing down an
		// already-invalid session stays a no-op instead of a 401.
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/applications", func(r chi.Router) {
				r.Get("/", appHandler.List)
				r.Post("/", appHandler.Create)
				r.Get("/{id}", appHandler.Get)
				r.Put("/{id}", appHandler.Update)
				r.Delete("/{id}", appHandler.Delete)
			})
		})
	})

	return r
}
