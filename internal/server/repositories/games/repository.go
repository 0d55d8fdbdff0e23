// Package games stores catalog games in sqlite or postgres.
package games

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gametracker/internal/models"
)

// Repository persists games. Get and the mutations return
// common.ErrorNotFound for unknown ids.
type Repository interface {
	List(ctx context.Context) ([]models.Game, error)
	Get(ctx context.Context, id string) (models.Game, error)
	Insert(ctx context.Context, g models.Game, createdAt time.Time) error
	Update(ctx context.Context, g models.Game) error
	Delete(ctx context.Context, id string) error
}
