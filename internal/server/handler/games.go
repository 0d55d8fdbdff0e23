package handler

import (
	"net/http"

	"github.com/dmitrijs2005/gametracker/internal/models"
	"github.com/dmitrijs2005/gametracker/internal/server/response"
	"github.com/go-chi/chi/v5"
)

// ListGames handles GET /game
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.catalog.ListGames(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, games)
}

// GetGame handles GET /game/{id}
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	g, err := h.catalog.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, g)
}

// CreateGame handles POST /game
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var in models.GameInput
	if err := decode(w, r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	g, err := h.catalog.CreateGame(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Created(w, g)
}

// UpdateGame handles PUT /game/{id}
func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	var in models.GameInput
	if err := decode(w, r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	g, err := h.catalog.UpdateGame(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, g)
}

// DeleteGame handles DELETE /game/{id}. The game's reviews go with it.
func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.catalog.DeleteGame(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, deleted{ID: id})
}
