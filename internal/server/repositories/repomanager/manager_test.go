package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gametracker/internal/dbx"
	"github.com/dmitrijs2005/gametracker/internal/server/repositories/games"
	"github.com/dmitrijs2005/gametracker/internal/server/repositories/reviews"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := NewRepositoryManager(dbx.Postgres)
	var _ RepositoryManager = m

	assert.Equal(t, dbx.Postgres, m.Dialect())
	assert.IsType(t, &games.SQLRepository{}, m.Games(db))
	assert.IsType(t, &reviews.SQLRepository{}, m.Reviews(db))
}

func TestRunMigrations_PassesDialect(t *testing.T) {
	orig := migrateUp
	t.Cleanup(func() { migrateUp = orig })

	var got dbx.Dialect
	migrateUp = func(ctx context.Context, db *sql.DB, d dbx.Dialect) error {
		got = d
		return nil
	}

	require.NoError(t, NewRepositoryManager(dbx.Postgres).RunMigrations(context.Background(), nil))
	assert.Equal(t, dbx.Postgres, got)
}

func TestRunMigrations_WrapsError(t *testing.T) {
	orig := migrateUp
	t.Cleanup(func() { migrateUp = orig })

	boom := errors.New("boom")
	migrateUp = func(context.Context, *sql.DB, dbx.Dialect) error { return boom }

	err := NewRepositoryManager(dbx.SQLite).RunMigrations(context.Background(), nil)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "migration error")
}

func TestOpen_SQLiteMemoryAndMigrate(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, dbx.SQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	m := NewRepositoryManager(dbx.SQLite)
	require.NoError(t, m.RunMigrations(ctx, db))

	list, err := m.Games(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
