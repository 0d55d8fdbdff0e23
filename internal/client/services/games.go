package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gametracker/internal/client/client"
	"github.com/dmitrijs2005/gametracker/internal/client/store"
	"github.com/dmitrijs2005/gametracker/internal/client/views"
	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/dmitrijs2005/gametracker/internal/models"
)

// GameWorkflow drives the add, edit and delete flows of games.
type GameWorkflow struct {
	base
	editor views.Editor[models.GameInput]
	now    func() time.Time
}

// NewGameWorkflow returns a workflow that saves games through gw and refreshes
// st after every confirmed mutation. A nil n discards notices.
func NewGameWorkflow(gw client.Client, st *store.Store, n Notifier, log logging.Logger) *GameWorkflow {
	return &GameWorkflow{base: newBase(gw, st, n, log, "games"), now: time.Now}
}

// Editor exposes the form state.
func (w *GameWorkflow) Editor() *views.Editor[models.GameInput] { return &w.editor }

// StartCreate opens an empty form with the default genre, platform and year.
func (w *GameWorkflow) StartCreate() error {
	return w.editor.OpenCreate(models.NewGameInput(w.now()))
}

// StartEdit opens a form pre-populated from g.
func (w *GameWorkflow) StartEdit(g models.Game) error {
	return w.editor.OpenEdit(g.ID, g.Input())
}

// Update edits the open draft.
func (w *GameWorkflow) Update(fn func(*models.GameInput)) error { return w.editor.Update(fn) }

// Cancel closes the form and drops the draft.
func (w *GameWorkflow) Cancel() error { return w.editor.Cancel() }

// Submit validates and sends the draft. On success the form closes and the
// store is refreshed; on failure the form stays open with the draft intact.
func (w *GameWorkflow) Submit(ctx context.Context) error {
	created := w.editor.Mode() == views.ModeCreate
	target := w.editor.TargetID()

	save := func(ctx context.Context, mode views.Mode, id string, in models.GameInput) error {
		var err error
		if mode == views.ModeEdit {
			_, err = w.gw.UpdateGame(ctx, id, in.Normalized())
		} else {
			_, err = w.gw.CreateGame(ctx, in.Normalized())
		}
		return err
	}

	refresh := []func(context.Context) error{w.store.RefreshGames}
	if !created {
		if _, ok := w.store.Game(target); ok {
			refresh = append(refresh, func(ctx context.Context) error { return w.store.RefreshGame(ctx, target) })
		}
	}

	if err := submit(ctx, w.base, &w.editor, "game", save, refresh); err != nil {
		return err
	}
	if created {
		w.success(ctx, "Game added")
	} else {
		w.success(ctx, "Game updated")
	}
	return nil
}

// Delete removes the game id once the user confirmed. Without confirmation
// the gateway is not called and ErrNotConfirmed is returned.
func (w *GameWorkflow) Delete(ctx context.Context, id string, confirmed bool) error {
	refresh := []func(context.Context) error{w.store.RefreshGames}
	if w.store.HasReviews(store.AllReviews) {
		refresh = append(refresh, func(ctx context.Context) error { return w.store.RefreshReviews(ctx, store.AllReviews) })
	}
	del := func(ctx context.Context, id string) error {
		if err := w.gw.DeleteGame(ctx, id); err != nil {
			return err
		}
		w.store.Forget(id)
		return nil
	}
	if err := w.remove(ctx, "game", id, confirmed, del, refresh); err != nil {
		return err
	}
	w.success(ctx, "Game deleted")
	return nil
}
