package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gametracker/internal/client/client"
	"github.com/dmitrijs2005/gametracker/internal/client/store"
	"github.com/dmitrijs2005/gametracker/internal/client/views"
	"github.com/dmitrijs2005/gametracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGames(t *testing.T) (*GameWorkflow, *fakeGateway, *store.Store, *noticeRecorder) {
	t.Helper()
	gw := newFakeGateway()
	gw.games = []models.Game{{ID: "g0", Title: "Doom", Category: models.CategoryAction, Platform: models.PlatformPC,
		ReleaseYear: 1993, Developer: "id Software", Description: "Demons on Mars."}}
	st := store.New(gw, nil)
	require.NoError(t, st.RefreshGames(context.Background()))

	rec := &noticeRecorder{}
	w := NewGameWorkflow(gw, st, rec, nil)
	w.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return w, gw, st, rec
}

func fillGame(in *models.GameInput) {
	in.Title = "Celeste"
	in.Developer = "Maddy Makes Games"
	in.Description = "Climb the mountain."
	in.Category = models.CategoryPuzzle
}

func TestGameWorkflow_CreateRefreshesStore(t *testing.T) {
	w, gw, st, rec := setupGames(t)
	ctx := context.Background()

	require.NoError(t, w.StartCreate())
	assert.Equal(t, 2025, w.Editor().Draft().ReleaseYear)
	assert.Equal(t, models.PlatformPC, w.Editor().Draft().Platform)

	require.NoError(t, w.Update(fillGame))
	require.NoError(t, w.Submit(ctx))

	assert.Equal(t, views.PhaseIdle, w.Editor().Phase())
	assert.Equal(t, []string{"create game"}, gw.calls)
	require.Len(t, st.Games(), 2)
	assert.Equal(t, "Celeste", st.Games()[1].Title)
	assert.Equal(t, Notice{Kind: NoticeSuccess, Message: "Game added"}, rec.last())
}

func TestGameWorkflow_ValidationFailureMakesNoCall(t *testing.T) {
	w, gw, st, rec := setupGames(t)

	require.NoError(t, w.StartCreate())
	err := w.Submit(context.Background())

	require.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, gw.calls)
	assert.Equal(t, views.PhaseEditing, w.Editor().Phase())
	assert.NotEmpty(t, w.Editor().Notice())
	assert.Equal(t, NoticeError, rec.last().Kind)
	assert.Len(t, st.Games(), 1)
}

func TestGameWorkflow_GatewayFailureKeepsFormAndCache(t *testing.T) {
	w, gw, st, rec := setupGames(t)
	gw.failOps["create game"] = true
	before := st.Games()

	require.NoError(t, w.StartCreate())
	require.NoError(t, w.Update(fillGame))
	err := w.Submit(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrNetwork)
	assert.Equal(t, views.PhaseEditing, w.Editor().Phase())
	assert.Equal(t, "Celeste", w.Editor().Draft().Title, "draft survives the failure")
	assert.Equal(t, before, st.Games())
	assert.Equal(t, NoticeError, rec.last().Kind)
	assert.Contains(t, rec.last().Message, "server exploded")

	// retry succeeds with the preserved draft
	gw.failOps["create game"] = false
	require.NoError(t, w.Submit(context.Background()))
	assert.Len(t, st.Games(), 2)
}

func TestGameWorkflow_EditReplacesRecord(t *testing.T) {
	w, gw, st, rec := setupGames(t)
	ctx := context.Background()
	require.NoError(t, st.RefreshGame(ctx, "g0"))

	require.NoError(t, w.StartEdit(st.Games()[0]))
	assert.Equal(t, views.ModeEdit, w.Editor().Mode())
	assert.Equal(t, "Doom", w.Editor().Draft().Title)

	require.NoError(t, w.Update(func(in *models.GameInput) { in.Completed = true }))
	require.NoError(t, w.Submit(ctx))

	assert.Equal(t, []string{"update game"}, gw.calls)
	assert.True(t, st.Games()[0].Completed)
	detail, ok := st.Game("g0")
	require.True(t, ok)
	assert.True(t, detail.Completed)
	assert.Equal(t, "Game updated", rec.last().Message)
}

func TestGameWorkflow_DeleteRequiresConfirmation(t *testing.T) {
	w, gw, st, _ := setupGames(t)

	err := w.Delete(context.Background(), "g0", false)

	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Empty(t, gw.calls)
	assert.Len(t, st.Games(), 1)
}

func TestGameWorkflow_DeleteConfirmed(t *testing.T) {
	w, gw, st, rec := setupGames(t)
	gw.reviews = []models.Review{{ID: "r1", Game: models.GameRef{ID: "g0"}}}
	ctx := context.Background()
	require.NoError(t, st.RefreshReviews(ctx, store.AllReviews))

	require.NoError(t, w.Delete(ctx, "g0", true))

	assert.Equal(t, []string{"delete game"}, gw.calls)
	assert.Empty(t, st.Games())
	assert.Empty(t, st.Reviews(store.AllReviews))
	assert.Equal(t, "Game deleted", rec.last().Message)
}

func TestGameWorkflow_DeleteFailureLeavesCache(t *testing.T) {
	w, gw, st, rec := setupGames(t)
	gw.failOps["delete game"] = true

	err := w.Delete(context.Background(), "g0", true)

	assert.ErrorIs(t, err, client.ErrNetwork)
	assert.Len(t, st.Games(), 1)
	assert.Equal(t, NoticeError, rec.last().Kind)
}

func TestGameWorkflow_RefreshFailureAfterSaveIsReported(t *testing.T) {
	w, gw, st, rec := setupGames(t)
	gw.failOps["list games"] = true

	require.NoError(t, w.StartCreate())
	require.NoError(t, w.Update(fillGame))
	require.NoError(t, w.Submit(context.Background()))

	assert.Equal(t, views.PhaseIdle, w.Editor().Phase())
	assert.Len(t, st.Games(), 1, "stale snapshot kept until the next successful refresh")
	require.GreaterOrEqual(t, len(rec.notices), 2)
	assert.Equal(t, NoticeError, rec.notices[len(rec.notices)-2].Kind)
	assert.Equal(t, "Game added", rec.last().Message)
}
