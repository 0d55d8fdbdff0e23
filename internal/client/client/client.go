package client

import (
	"context"

	"github.com/dmitrijs2005/gametracker/internal/models"
)

// Client is the remote catalog API. Every method performs exactly one request
// and reports failures as *NetworkError. Implementations never retry.
type Client interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	GetGame(ctx context.Context, id string) (models.Game, error)
	CreateGame(ctx context.Context, in models.GameInput) (models.Game, error)
	UpdateGame(ctx context.Context, id string, in models.GameInput) (models.Game, error)
	DeleteGame(ctx context.Context, id string) error

	ListReviews(ctx context.Context) ([]models.Review, error)
	ListReviewsByGame(ctx context.Context, gameID string) ([]models.Review, error)
	CreateReview(ctx context.Context, in models.ReviewInput) (models.Review, error)
	UpdateReview(ctx context.Context, id string, in models.ReviewInput) (models.Review, error)
	DeleteReview(ctx context.Context, id string) error
}
