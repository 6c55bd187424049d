package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/theankitdev/yogivibes/internal/httpserver/deps"
	"github.com/theankitdev/yogivibes/internal/httpserver/handlers"
)

func init() { Register(registerFavorites) }

func registerFavorites(r chi.Router, d deps.Deps) {
	r.Get("/api/favorites", handlers.ListFavorites(d))
	r.Post("/api/favorites/toggle", handlers.ToggleFavorite(d))
}
