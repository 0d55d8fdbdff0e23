package reviews

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gametracker/internal/common"
	"github.com/dmitrijs2005/gametracker/internal/dbx"
	"github.com/dmitrijs2005/gametracker/internal/models"
)

const selectJoined = `SELECT r.id, r.rating, r.body, r.hours_played, r.difficulty, r.recommends, r.created_at,
	g.id, g.title, g.category, g.platform, g.release_year, g.developer, g.cover_url, g.description, g.completed
	FROM reviews r JOIN games g ON g.id = r.game_id`

// SQLRepository implements Repository over a dbx.DBTX.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

// NewSQLRepository returns a Repository over db using dialect placeholders.
func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

// List returns every review, newest first.
func (r *SQLRepository) List(ctx context.Context) ([]models.Review, error) {
	return r.query(ctx, selectJoined+` ORDER BY r.created_at DESC, r.id`)
}

// ListByGame returns the reviews of one game, newest first. An unknown game
// yields an empty list.
func (r *SQLRepository) ListByGame(ctx context.Context, gameID string) ([]models.Review, error) {
	return r.query(ctx, selectJoined+` WHERE r.game_id = ? ORDER BY r.created_at DESC, r.id`, gameID)
}

// Get returns review id or common.ErrorNotFound.
func (r *SQLRepository) Get(ctx context.Context, id string) (models.Review, error) {
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(selectJoined+` WHERE r.id = ?`), id)
	rv, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Review{}, common.ErrorNotFound
	}
	if err != nil {
		return models.Review{}, err
	}
	return rv, nil
}

func (r *SQLRepository) Insert(ctx context.Context, rv models.Review) error {
	query := `INSERT INTO reviews (id, game_id, rating, body, hours_played, difficulty, recommends, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(query),
		rv.ID, rv.Game.ID, rv.Rating, rv.Body, rv.HoursPlayed, string(rv.Difficulty), rv.Recommends,
		rv.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

// Update replaces the editable columns. The creation time is kept.
func (r *SQLRepository) Update(ctx context.Context, rv models.Review) error {
	query := `UPDATE reviews SET game_id = ?, rating = ?, body = ?, hours_played = ?, difficulty = ?, recommends = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(query),
		rv.Game.ID, rv.Rating, rv.Body, rv.HoursPlayed, string(rv.Difficulty), rv.Recommends, rv.ID)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Delete removes review id.
func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM reviews WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// DeleteByGame removes all reviews of a game and reports how many were removed.
func (r *SQLRepository) DeleteByGame(ctx context.Context, gameID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM reviews WHERE game_id = ?`), gameID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete reviews: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

func (r *SQLRepository) query(ctx context.Context, query string, args ...any) ([]models.Review, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select reviews: %w", err)
	}
	defer rows.Close()

	result := []models.Review{}
	for rows.Next() {
		rv, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (models.Review, error) {
	var (
		rv                             models.Review
		g                              models.Game
		difficulty, category, platform string
		createdAt                      int64
	)
	err := s.Scan(
		&rv.ID, &rv.Rating, &rv.Body, &rv.HoursPlayed, &difficulty, &rv.Recommends, &createdAt,
		&g.ID, &g.Title, &category, &platform, &g.ReleaseYear, &g.Developer, &g.CoverURL, &g.Description, &g.Completed,
	)
	if err != nil {
		return models.Review{}, err
	}
	rv.Difficulty = models.Difficulty(difficulty)
	rv.CreatedAt = time.UnixMilli(createdAt).UTC()
	g.Category = models.Category(category)
	g.Platform = models.Platform(platform)
	rv.Game = models.GameRef{ID: g.ID, Game: &g}
	return rv, nil
}
