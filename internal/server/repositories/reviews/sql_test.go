package reviews

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gametracker/internal/common"
	"github.com/dmitrijs2005/gametracker/internal/dbx"
	"github.com/dmitrijs2005/gametracker/internal/models"
	"github.com/dmitrijs2005/gametracker/internal/server/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(context.Background(), db, dbx.SQLite))

	_, err = db.Exec(`INSERT INTO games (id, title, category, platform, release_year, developer, cover_url, description, completed, created_at)
		VALUES ('g1', 'Hades', 'Acción', 'PC', 2020, 'Supergiant', '', 'Roguelike', 1, 1),
		       ('g2', 'Celeste', 'Puzzle', 'Nintendo Switch', 2018, 'EXOK', '', 'Climbing', 0, 2)`)
	require.NoError(t, err)
	return db
}

func review(id, gameID string, at time.Time) models.Review {
	return models.Review{
		ID:          id,
		Game:        models.GameRef{ID: gameID},
		Rating:      4,
		Body:        "A very good game indeed",
		HoursPlayed: 12.5,
		Difficulty:  models.DifficultyHard,
		Recommends:  true,
		CreatedAt:   at,
	}
}

func TestSQLite_ListsArePopulatedAndNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := NewSQLRepository(setupDB(t), dbx.SQLite)
	t0 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, r.Insert(ctx, review("r1", "g1", t0)))
	require.NoError(t, r.Insert(ctx, review("r2", "g1", t0.Add(time.Hour))))
	require.NoError(t, r.Insert(ctx, review("r3", "g2", t0.Add(2*time.Hour))))

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"r3", "r2", "r1"}, []string{all[0].ID, all[1].ID, all[2].ID})

	require.NotNil(t, all[0].Game.Game)
	assert.Equal(t, "g2", all[0].GameID())
	assert.Equal(t, "Celeste", all[0].Game.Game.Title)
	assert.False(t, all[0].Game.Game.Completed)
	assert.True(t, all[0].CreatedAt.Equal(t0.Add(2*time.Hour)))
	assert.Equal(t, 12.5, all[0].HoursPlayed)
	assert.Equal(t, models.DifficultyHard, all[0].Difficulty)

	byGame, err := r.ListByGame(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, byGame, 2)
	assert.Equal(t, "r2", byGame[0].ID)

	none, err := r.ListByGame(ctx, "unknown")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestSQLite_UpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	r := NewSQLRepository(setupDB(t), dbx.SQLite)
	t0 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, r.Insert(ctx, review("r1", "g1", t0)))

	upd := review("r1", "g1", time.Time{})
	upd.Rating = 2
	upd.Recommends = false
	require.NoError(t, r.Update(ctx, upd))

	got, err := r.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Rating)
	assert.False(t, got.Recommends)
	assert.True(t, got.CreatedAt.Equal(t0))
}

func TestSQLite_DeleteAndDeleteByGame(t *testing.T) {
	ctx := context.Background()
	r := NewSQLRepository(setupDB(t), dbx.SQLite)
	t0 := time.Now().UTC()
	require.NoError(t, r.Insert(ctx, review("r1", "g1", t0)))
	require.NoError(t, r.Insert(ctx, review("r2", "g1", t0)))
	require.NoError(t, r.Insert(ctx, review("r3", "g2", t0)))

	require.NoError(t, r.Delete(ctx, "r3"))
	assert.ErrorIs(t, r.Delete(ctx, "r3"), common.ErrorNotFound)

	n, err := r.DeleteByGame(ctx, "g1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = r.Get(ctx, "r1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, r.Update(ctx, review("r1", "g1", t0)), common.ErrorNotFound)
}

func TestPostgres_ListByGameRebinds(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	r := NewSQLRepository(db, dbx.Postgres)

	rows := sqlmock.NewRows([]string{"id", "rating", "body", "hours_played", "difficulty", "recommends", "created_at",
		"gid", "title", "category", "platform", "release_year", "developer", "cover_url", "description", "completed"}).
		AddRow("r1", 5, "Loved every minute", 40.0, "Normal", true, int64(1700000000000),
			"g1", "Hades", "Acción", "PC", 2020, "Supergiant", "", "Roguelike", true)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE r.game_id = $1 ORDER BY r.created_at DESC`)).
		WithArgs("g1").WillReturnRows(rows)

	list, err := r.ListByGame(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Hades", list[0].Game.Game.Title)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), list[0].CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_InsertArgs(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	r := NewSQLRepository(db, dbx.Postgres)

	at := time.UnixMilli(1700000000000)
	mock.ExpectExec(`INSERT INTO reviews .* VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7, \$8\)`).
		WithArgs("r1", "g1", 4, "A very good game indeed", 12.5, "Difícil", true, int64(1700000000000)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Insert(context.Background(), review("r1", "g1", at)))
	require.NoError(t, mock.ExpectationsWereMet())
}
