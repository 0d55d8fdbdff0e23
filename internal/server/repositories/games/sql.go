package games

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

const columns = `id, title, category, platform, release_year, developer, cover_url, description, completed`

// SQLRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
// Queries are written with '?' placeholders and rebound for the dialect.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

// NewSQLRepository constructs a repository bound to the given DBTX.
func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

// List returns all games in insertion order.
func (r *SQLRepository) List(ctx context.Context) ([]models.Game, error) {
	query := `SELECT ` + columns + ` FROM games ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query))
	if err != nil {
		return nil, fmt.Errorf("failed to select games: %w", err)
	}
	defer rows.Close()

	result := []models.Game{}
	for rows.Next() {
		g, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns the game with the given id, or common.ErrorNotFound.
func (r *SQLRepository) Get(ctx context.Context, id string) (models.Game, error) {
	query := `SELECT ` + columns + ` FROM games WHERE id = ?`
	g, err := scan(r.db.QueryRowContext(ctx, r.dialect.Rebind(query), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Game{}, common.ErrorNotFound
	}
	if err != nil {
		return models.Game{}, err
	}
	return g, nil
}

// Insert stores g with createdAt as its ordering key.
func (r *SQLRepository) Insert(ctx context.Context, g models.Game, createdAt time.Time) error {
	query := `INSERT INTO games (` + columns + `, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(query),
		g.ID, g.Title, string(g.Category), string(g.Platform), g.ReleaseYear,
		g.Developer, g.CoverURL, g.Description, g.Completed, createdAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}
	return nil
}

// Update replaces every editable column of the game with g.ID.
func (r *SQLRepository) Update(ctx context.Context, g models.Game) error {
	query := `UPDATE games SET title = ?, category = ?, platform = ?, release_year = ?,
		developer = ?, cover_url = ?, description = ?, completed = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(query),
		g.Title, string(g.Category), string(g.Platform), g.ReleaseYear,
		g.Developer, g.CoverURL, g.Description, g.Completed, g.ID)
	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}
	return expectOne(res)
}

// Delete removes game id. Reviews are removed by the caller in the same
// transaction.
func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM games WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return expectOne(res)
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (models.Game, error) {
	var (
		g                  models.Game
		category, platform string
	)
	err := s.Scan(&g.ID, &g.Title, &category, &platform, &g.ReleaseYear,
		&g.Developer, &g.CoverURL, &g.Description, &g.Completed)
	if err != nil {
		return models.Game{}, err
	}
	g.Category = models.Category(category)
	g.Platform = models.Platform(platform)
	return g, nil
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
