// Package router assembles the backend HTTP routes.
package router

import (
	"net/http"

	"github.com/dmitrijs2005/gametracker/internal/common"
	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/dmitrijs2005/gametracker/internal/server/apierror"
	"github.com/dmitrijs2005/gametracker/internal/server/handler"
	"github.com/dmitrijs2005/gametracker/internal/server/middleware"
	"github.com/dmitrijs2005/gametracker/internal/server/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds what New needs to build the router.
type Config struct {
	Handler        *handler.Handler
	Logger         logging.Logger
	AllowedOrigins []string
}

// New creates the router with the global middleware stack.
func New(cfg Config) *chi.Mux {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", common.RequestIDHeader},
		ExposedHeaders: []string{common.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, apierror.NotFound("Route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, &apierror.Error{
			StatusCode: http.StatusMethodNotAllowed,
			Code:       "METHOD_NOT_ALLOWED",
			Message:    "Method not allowed",
		})
	})

	h := cfg.Handler
	r.Get("/health", h.Health)

	r.Route("/game", func(r chi.Router) {
		r.Get("/", h.ListGames)
		r.Post("/", h.CreateGame)
		r.Get("/{id}", h.GetGame)
		r.Put("/{id}", h.UpdateGame)
		r.Delete("/{id}", h.DeleteGame)
	})

	r.Route("/review", func(r chi.Router) {
		r.Get("/", h.ListReviews)
		r.Post("/", h.CreateReview)
		r.Get("/juego/{id}", h.ListGameReviews)
		r.Get("/{id}", h.GetReview)
		r.Put("/{id}", h.UpdateReview)
		r.Delete("/{id}", h.DeleteReview)
	})

	return r
}
