// Package repomanager opens the backend database, applies the schema and
// vends dialect-aware repositories bound to a DBTX.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gametracker/internal/dbx"
	"github.com/dmitrijs2005/gametracker/internal/server/migrations"
	"github.com/dmitrijs2005/gametracker/internal/server/repositories/games"
	"github.com/dmitrijs2005/gametracker/internal/server/repositories/reviews"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// RepositoryManager builds repositories bound to a DB handle or a transaction
// and runs the schema migrations for its dialect.
type RepositoryManager interface {
	Dialect() dbx.Dialect
	RunMigrations(ctx context.Context, db *sql.DB) error
	Games(db dbx.DBTX) games.Repository
	Reviews(db dbx.DBTX) reviews.Repository
}

// SQLRepositoryManager vends SQL-backed repositories for one dialect.
type SQLRepositoryManager struct {
	dialect dbx.Dialect
}

// NewRepositoryManager returns a manager for d.
func NewRepositoryManager(d dbx.Dialect) *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: d}
}

func (m *SQLRepositoryManager) Dialect() dbx.Dialect { return m.dialect }

// Games returns a games.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Games(db dbx.DBTX) games.Repository {
	return games.NewSQLRepository(db, m.dialect)
}

// Reviews returns a reviews.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Reviews(db dbx.DBTX) reviews.Repository {
	return reviews.NewSQLRepository(db, m.dialect)
}

// migrateUp is a seam for testing migrations.Up.
var migrateUp = migrations.Up

// RunMigrations applies the embedded schema for the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	if err := migrateUp(ctx, db, m.dialect); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

// Open connects to the database for d and verifies the connection. sqlite
// is limited to one connection so that ":memory:" databases are shared.
func Open(ctx context.Context, d dbx.Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if d == dbx.SQLite {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return db, nil
}
