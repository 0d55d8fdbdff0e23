// Package reviews stores game reviews. Reads return each review with its
// game record attached.
package reviews

import (
	"context"

	"github.com/dmitrijs2005/gametracker/internal/models"
)

// Repository persists reviews. Reads return each review with its game
// populated.
type Repository interface {
	List(ctx context.Context) ([]models.Review, error)
	ListByGame(ctx context.Context, gameID string) ([]models.Review, error)
	Get(ctx context.Context, id string) (models.Review, error)
	Insert(ctx context.Context, r models.Review) error
	Update(ctx context.Context, r models.Review) error
	Delete(ctx context.Context, id string) error
	DeleteByGame(ctx context.Context, gameID string) (int64, error)
}
