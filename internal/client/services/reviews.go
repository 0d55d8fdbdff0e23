package services

import (
	"context"

	"github.com/dmitrijs2005/gametracker/internal/client/client"
	"github.com/dmitrijs2005/gametracker/internal/client/store"
	"github.com/dmitrijs2005/gametracker/internal/client/views"
	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/dmitrijs2005/gametracker/internal/models"
)

// ReviewWorkflow drives the review forms of one game's detail view.
type ReviewWorkflow struct {
	base
	editor views.Editor[models.ReviewInput]
}

// NewReviewWorkflow is the review counterpart of NewGameWorkflow. After a
// mutation it refreshes the game's reviews and, when loaded, all reviews.
func NewReviewWorkflow(gw client.Client, st *store.Store, n Notifier, log logging.Logger) *ReviewWorkflow {
	return &ReviewWorkflow{base: newBase(gw, st, n, log, "reviews")}
}

// Editor exposes the form state.
func (w *ReviewWorkflow) Editor() *views.Editor[models.ReviewInput] { return &w.editor }

// StartCreate opens an empty review form for gameID.
func (w *ReviewWorkflow) StartCreate(gameID string) error {
	return w.editor.OpenCreate(models.NewReviewInput(gameID))
}

// StartEdit opens the form pre-filled from r.
func (w *ReviewWorkflow) StartEdit(r models.Review) error {
	return w.editor.OpenEdit(r.ID, r.Input())
}

// Update edits the open draft.
func (w *ReviewWorkflow) Update(fn func(*models.ReviewInput)) error { return w.editor.Update(fn) }

// Cancel closes the form and drops the draft.
func (w *ReviewWorkflow) Cancel() error { return w.editor.Cancel() }

// Submit validates and saves the draft. On failure the form stays open with
// the draft and a notice.
func (w *ReviewWorkflow) Submit(ctx context.Context) error {
	created := w.editor.Mode() == views.ModeCreate
	gameID := w.editor.Draft().GameID

	save := func(ctx context.Context, mode views.Mode, id string, in models.ReviewInput) error {
		var err error
		if mode == views.ModeEdit {
			_, err = w.gw.UpdateReview(ctx, id, in.Normalized())
		} else {
			_, err = w.gw.CreateReview(ctx, in.Normalized())
		}
		return err
	}

	if err := submit(ctx, w.base, &w.editor, "review", save, w.refreshers(gameID)); err != nil {
		return err
	}
	if created {
		w.success(ctx, "Review published")
	} else {
		w.success(ctx, "Review updated")
	}
	return nil
}

// Delete removes review id of gameID once confirmed.
func (w *ReviewWorkflow) Delete(ctx context.Context, gameID, id string, confirmed bool) error {
	if err := w.remove(ctx, "review", id, confirmed, w.gw.DeleteReview, w.refreshers(gameID)); err != nil {
		return err
	}
	w.success(ctx, "Review deleted")
	return nil
}

func (w *ReviewWorkflow) refreshers(gameID string) []func(context.Context) error {
	var out []func(context.Context) error
	if gameID != "" {
		scope := store.ReviewsOf(gameID)
		out = append(out, func(ctx context.Context) error { return w.store.RefreshReviews(ctx, scope) })
	}
	if w.store.HasReviews(store.AllReviews) {
		out = append(out, func(ctx context.Context) error { return w.store.RefreshReviews(ctx, store.AllReviews) })
	}
	return out
}
