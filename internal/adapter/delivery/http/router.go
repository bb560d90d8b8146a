// Package http provides the HTTP delivery layer for the TinyApp URL shortener.
// This package contains the HTTP handlers and related types used for processing
// incoming requests, validating input, and formatting responses.
package http

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/vadimbarashkov/tinyapp/internal/session"
)

// NewRouter initializes and returns a new Chi router configured with middleware and routes for the TinyApp API.
func NewRouter(
	logger *httplog.Logger,
	sessions *session.Manager,
	urlUseCase urlUseCase,
	userUseCase userUseCase,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*"},
		AllowedMethods:   []string{"POST", "GET", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(sessions.Middleware)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.yml")
	})

	validate := newValidator()
	urls := newURLHandler(urlUseCase, sessions, validate)
	users := newUserHandler(userUseCase, sessions, validate)

	r.Get("/", handleRoot)
	r.Get("/u/{shortCode}", urls.followShortCode)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", handlePing)

		r.Get("/register", users.form("/api/v1/register"))
		r.Post("/register", users.register)
		r.Get("/login", users.form(loginPath))
		r.Post("/login", users.login)
		r.Post("/logout", users.logout)
		r.Get("/me", users.me)

		r.Route("/urls", func(r chi.Router) {
			r.Get("/", urls.listURLs)
			r.Post("/", urls.shortenURL)

			r.Route("/{shortCode}", func(r chi.Router) {
				r.Get("/", urls.getURL)
				r.Put("/", urls.modifyURL)
				r.Delete("/", urls.deactivateURL)
			})
		})
	})

	return r
}
