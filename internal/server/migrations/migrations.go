// Package migrations embeds the backend schema, one goose directory per SQL
// dialect, and applies it.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"sync"

	"github.com/dmitrijs2005/gametracker/internal/dbx"
	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS

// goose keeps its base FS and dialect in package state.
var mu sync.Mutex

// Dir returns the directory inside Migrations holding the files for d.
func Dir(d dbx.Dialect) string {
	if d == dbx.Postgres {
		return "postgres"
	}
	return "sqlite"
}

// Up applies all pending migrations for d to db.
func Up(ctx context.Context, db *sql.DB, d dbx.Dialect) error {
	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(d.GooseDialect()); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, Dir(d))
}
