package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gametracker/internal/common"
	"github.com/dmitrijs2005/gametracker/internal/dbx"
	"github.com/dmitrijs2005/gametracker/internal/models"
)

// ListGames returns every game in insertion order.
func (s *CatalogService) ListGames(ctx context.Context) ([]models.Game, error) {
	return cached(ctx, s, keyGames, func() ([]models.Game, error) {
		return s.repomanager.Games(s.db).List(ctx)
	})
}

// GetGame returns game id or common.ErrorNotFound.
func (s *CatalogService) GetGame(ctx context.Context, id string) (models.Game, error) {
	return s.repomanager.Games(s.db).Get(ctx, id)
}

// CreateGame validates in and stores it under a fresh id.
func (s *CatalogService) CreateGame(ctx context.Context, in models.GameInput) (models.Game, error) {
	if err := in.Validate(); err != nil {
		return models.Game{}, err
	}

	g := in.Build(s.newID())
	if err := s.repomanager.Games(s.db).Insert(ctx, g, s.timestamp()); err != nil {
		return models.Game{}, err
	}
	s.invalidate(ctx)

	s.logger.Info(ctx, "game created", "id", g.ID, "title", g.Title)
	return g, nil
}

// UpdateGame replaces the editable fields of game id.
func (s *CatalogService) UpdateGame(ctx context.Context, id string, in models.GameInput) (models.Game, error) {
	if err := in.Validate(); err != nil {
		return models.Game{}, err
	}

	g := in.Build(id)
	if err := s.repomanager.Games(s.db).Update(ctx, g); err != nil {
		return models.Game{}, err
	}
	s.invalidate(ctx)

	s.logger.Info(ctx, "game updated", "id", id)
	return g, nil
}

// DeleteGame removes the game and all of its reviews in one transaction.
func (s *CatalogService) DeleteGame(ctx context.Context, id string) error {
	var removed int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		n, err := s.repomanager.Reviews(tx).DeleteByGame(ctx, id)
		if err != nil {
			return err
		}
		removed = n
		return s.repomanager.Games(tx).Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error deleting game: %w", err)
	}
	s.invalidate(ctx)

	s.logger.Info(ctx, "game deleted", "id", id, "reviews", removed)
	return nil
}
