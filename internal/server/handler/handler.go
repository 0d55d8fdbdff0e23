// Package handler exposes the catalog over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/dmitrijs2005/gametracker/internal/models"
	"github.com/dmitrijs2005/gametracker/internal/server/apierror"
	"github.com/dmitrijs2005/gametracker/internal/server/response"
)

const maxBodyBytes = 1 << 20

// Catalog is the service behind the handlers.
type Catalog interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	GetGame(ctx context.Context, id string) (models.Game, error)
	CreateGame(ctx context.Context, in models.GameInput) (models.Game, error)
	UpdateGame(ctx context.Context, id string, in models.GameInput) (models.Game, error)
	DeleteGame(ctx context.Context, id string) error

	ListReviews(ctx context.Context) ([]models.Review, error)
	ListReviewsByGame(ctx context.Context, gameID string) ([]models.Review, error)
	GetReview(ctx context.Context, id string) (models.Review, error)
	CreateReview(ctx context.Context, in models.ReviewInput) (models.Review, error)
	UpdateReview(ctx context.Context, id string, in models.ReviewInput) (models.Review, error)
	DeleteReview(ctx context.Context, id string) error
}

// Handler serves the /game, /review and /health routes.
type Handler struct {
	catalog Catalog
	logger  logging.Logger
}

// New returns a Handler serving c.
func New(c Catalog, l logging.Logger) *Handler {
	return &Handler{catalog: c, logger: l.With("module", "http")}
}

type deleted struct {
	ID string `json:"_id"`
}

// fail writes err and logs it when it maps to a server error.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	e := apierror.FromError(err)
	if e.StatusCode >= http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request error", "path", r.URL.Path, "error", err)
	}
	response.Error(w, e)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig):
			return apierror.BadRequest("request body too large")
		case errors.Is(err, io.EOF):
			return apierror.BadRequest("request body is empty")
		}
		return apierror.BadRequest("invalid JSON")
	}
	return nil
}
