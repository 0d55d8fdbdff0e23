package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openCatalog(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE games (id TEXT PRIMARY KEY, title TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func countGames(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM games`).Scan(&n))
	return n
}

func insertGame(ctx context.Context, tx DBTX, id string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO games (id, title) VALUES (?, ?)`, id, "Celeste")
	return err
}

func TestWithTx_Commits(t *testing.T) {
	db := openCatalog(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return insertGame(ctx, tx, "g1")
	})

	require.NoError(t, err)
	assert.Equal(t, 1, countGames(t, db))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := openCatalog(t)
	errCascade := errors.New("cascade failed")

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, insertGame(ctx, tx, "g1"))
		return errCascade
	})

	assert.ErrorIs(t, err, errCascade)
	assert.Zero(t, countGames(t, db))
}

func TestWithTx_RollsBackAndRepanics(t *testing.T) {
	db := openCatalog(t)

	assert.PanicsWithValue(t, "kaput", func() {
		_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
			require.NoError(t, insertGame(ctx, tx, "g1"))
			panic("kaput")
		})
	})
	assert.Zero(t, countGames(t, db))
}

func TestWithTx_BeginFailsOnClosedDB(t *testing.T) {
	db := openCatalog(t)
	require.NoError(t, db.Close())

	called := false
	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin tx")
	assert.False(t, called)
}

func TestWithTx_ErrorWrapping(t *testing.T) {
	errFn := errors.New("delete reviews failed")
	errRollback := errors.New("connection reset")
	errCommit := errors.New("disk full")

	tests := []struct {
		name    string
		expect  func(m sqlmock.Sqlmock)
		fnErr   error
		wantIs  []error
		wantMsg string
		notMsg  string
	}{
		{
			name: "rollback failure is joined",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectRollback().WillReturnError(errRollback)
			},
			fnErr:   errFn,
			wantIs:  []error{errFn, errRollback},
			wantMsg: "rollback: connection reset",
		},
		{
			name: "clean rollback keeps fn error",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectRollback()
			},
			fnErr:   errFn,
			wantIs:  []error{errFn},
			wantMsg: "delete reviews failed",
			notMsg:  "rollback",
		},
		{
			name: "commit failure is wrapped",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectCommit().WillReturnError(errCommit)
			},
			wantIs:  []error{errCommit},
			wantMsg: "commit: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			t.Cleanup(func() { _ = db.Close() })
			tt.expect(mock)

			err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
				return tt.fnErr
			})

			require.Error(t, err)
			for _, target := range tt.wantIs {
				assert.ErrorIs(t, err, target)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
			if tt.notMsg != "" {
				assert.NotContains(t, err.Error(), tt.notMsg)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
