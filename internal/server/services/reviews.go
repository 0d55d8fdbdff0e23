package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gametracker/internal/common"
	"github.com/dmitrijs2005/gametracker/internal/dbx"
	"github.com/dmitrijs2005/gametracker/internal/models"
)

// ListReviews returns every review, newest first, with games populated.
func (s *CatalogService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return cached(ctx, s, keyReviews, func() ([]models.Review, error) {
		return s.repomanager.Reviews(s.db).List(ctx)
	})
}

// ListReviewsByGame returns the reviews of gameID. An unknown game yields an
// empty list.
func (s *CatalogService) ListReviewsByGame(ctx context.Context, gameID string) ([]models.Review, error) {
	return cached(ctx, s, keyGameReviews+gameID, func() ([]models.Review, error) {
		return s.repomanager.Reviews(s.db).ListByGame(ctx, gameID)
	})
}

// GetReview returns review id or common.ErrorNotFound.
func (s *CatalogService) GetReview(ctx context.Context, id string) (models.Review, error) {
	return s.repomanager.Reviews(s.db).Get(ctx, id)
}

// CreateReview stores a review of an existing game. It fails with
// common.ErrorUnknownGame when the game is missing.
func (s *CatalogService) CreateReview(ctx context.Context, in models.ReviewInput) (models.Review, error) {
	if err := in.Validate(); err != nil {
		return models.Review{}, err
	}

	var rv models.Review
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		g, err := s.reviewedGame(ctx, tx, in.Normalized().GameID)
		if err != nil {
			return err
		}
		rv = in.Build(s.newID(), &g, s.timestamp())
		return s.repomanager.Reviews(tx).Insert(ctx, rv)
	})
	if err != nil {
		return models.Review{}, err
	}
	s.invalidate(ctx)

	s.logger.Info(ctx, "review created", "id", rv.ID, "game", rv.GameID())
	return rv, nil
}

// UpdateReview replaces the editable fields of review id, keeping its
// creation time.
func (s *CatalogService) UpdateReview(ctx context.Context, id string, in models.ReviewInput) (models.Review, error) {
	if err := in.Validate(); err != nil {
		return models.Review{}, err
	}

	var rv models.Review
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Reviews(tx)
		current, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		g, err := s.reviewedGame(ctx, tx, in.Normalized().GameID)
		if err != nil {
			return err
		}
		rv = in.Build(id, &g, current.CreatedAt)
		return repo.Update(ctx, rv)
	})
	if err != nil {
		return models.Review{}, err
	}
	s.invalidate(ctx)

	s.logger.Info(ctx, "review updated", "id", id)
	return rv, nil
}

// DeleteReview removes review id.
func (s *CatalogService) DeleteReview(ctx context.Context, id string) error {
	if err := s.repomanager.Reviews(s.db).Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)

	s.logger.Info(ctx, "review deleted", "id", id)
	return nil
}

func (s *CatalogService) reviewedGame(ctx context.Context, tx dbx.DBTX, gameID string) (models.Game, error) {
	g, err := s.repomanager.Games(tx).Get(ctx, gameID)
	if errors.Is(err, common.ErrorNotFound) {
		return models.Game{}, common.ErrorUnknownGame
	}
	return g, err
}
