package handler

import (
	"net/http"

	"github.com/dmitrijs2005/gametracker/internal/models"
	"github.com/dmitrijs2005/gametracker/internal/server/response"
	"github.com/go-chi/chi/v5"
)

// ListReviews handles GET /review
func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.catalog.ListReviews(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, reviews)
}

// ListGameReviews handles GET /review/juego/{id}
func (h *Handler) ListGameReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.catalog.ListReviewsByGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, reviews)
}

// GetReview handles GET /review/{id}
func (h *Handler) GetReview(w http.ResponseWriter, r *http.Request) {
	rv, err := h.catalog.GetReview(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, rv)
}

// CreateReview handles POST /review
func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var in models.ReviewInput
	if err := decode(w, r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	rv, err := h.catalog.CreateReview(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.Created(w, rv)
}

// UpdateReview handles PUT /review/{id}
func (h *Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	var in models.ReviewInput
	if err := decode(w, r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	rv, err := h.catalog.UpdateReview(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, rv)
}

// DeleteReview handles DELETE /review/{id}
func (h *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.catalog.DeleteReview(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	response.OK(w, deleted{ID: id})
}
