package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gametracker/internal/client/services"
	"github.com/dmitrijs2005/gametracker/internal/client/store"
	"github.com/dmitrijs2005/gametracker/internal/client/views"
	"github.com/dmitrijs2005/gametracker/internal/models"
)

// Reviews lists the reviews of the open game, or of the whole catalog when
// no game is open, optionally searching text or difficulty.
func (a *App) Reviews(ctx context.Context, args []string) error {
	query := strings.Join(args, " ")
	if a.detail.GameID != "" {
		a.detail = a.detail.Apply(views.SetSearch{Query: query})
		a.renderReviewList()
		return nil
	}

	if err := a.store.RefreshReviews(ctx, store.AllReviews); err != nil {
		a.println("Could not load reviews:", describe(err))
		if !a.store.HasReviews(store.AllReviews) {
			return nil
		}
	}
	visible := views.FilterReviews(a.store.Reviews(store.AllReviews), query)
	if len(visible) == 0 {
		a.println("No reviews found.")
		return nil
	}
	titles := a.titles()
	for i, r := range visible {
		a.printReview(i+1, r, gameTitle(r, titles))
	}
	return nil
}

func (a *App) titles() map[string]string {
	out := make(map[string]string)
	for _, g := range a.store.Games() {
		out[g.ID] = g.Title
	}
	return out
}

func gameTitle(r models.Review, titles map[string]string) string {
	if r.Game.Game != nil && r.Game.Game.Title != "" {
		return r.Game.Game.Title
	}
	if t, ok := titles[r.GameID()]; ok {
		return t
	}
	return r.GameID()
}

func (a *App) requireDetail() bool {
	if a.detail.GameID == "" {
		a.println("Open a game first with 'show <id|#>'.")
		return false
	}
	return true
}

// resolveReview accepts a review id or a 1-based position in the open
// game's review listing.
func (a *App) resolveReview(args []string) (models.Review, bool) {
	if len(args) == 0 {
		return models.Review{}, false
	}
	arg := strings.TrimPrefix(args[0], "#")
	reviews := a.store.Reviews(store.ReviewsOf(a.detail.GameID))
	for _, r := range reviews {
		if r.ID == arg {
			return r, true
		}
	}
	if n, err := strconv.Atoi(arg); err == nil {
		visible := a.detail.Visible(reviews)
		if n >= 1 && n <= len(visible) {
			return visible[n-1], true
		}
	}
	return models.Review{}, false
}

func (a *App) reviewArg(args []string, usage string) (models.Review, bool) {
	if !a.requireDetail() {
		return models.Review{}, false
	}
	if len(args) == 0 {
		a.println("Usage:", usage)
		return models.Review{}, false
	}
	r, ok := a.resolveReview(args)
	if !ok {
		a.println("No such review:", args[0])
	}
	return r, ok
}

// AddReview opens the review form for the game shown in the detail view.
func (a *App) AddReview(ctx context.Context) error {
	if !a.requireDetail() {
		return nil
	}
	if err := a.reviews.StartCreate(a.detail.GameID); err != nil {
		return err
	}
	a.println("New review")
	return a.runReviewForm(ctx)
}

// EditReview opens the review form pre-filled from the picked review.
func (a *App) EditReview(ctx context.Context, args []string) error {
	r, ok := a.reviewArg(args, "editreview <id|#>")
	if !ok {
		return nil
	}
	if err := a.reviews.StartEdit(r); err != nil {
		return err
	}
	a.println("Editing review", r.ID)
	return a.runReviewForm(ctx)
}

func (a *App) runReviewForm(ctx context.Context) error {
	for {
		if err := a.fillReview(); err != nil {
			_ = a.reviews.Cancel()
			a.println("\nForm closed.")
			return nil
		}
		if err := a.reviews.Submit(ctx); err == nil {
			a.renderDetail()
			return nil
		}
		retry, err := Confirm(a.reader, a.out, "Edit and try again?")
		if err != nil || !retry {
			_ = a.reviews.Cancel()
			a.println("Changes discarded.")
			return nil
		}
	}
}

func (a *App) fillReview() error {
	d := a.reviews.Editor().Draft()
	var err error

	if d.Rating, err = promptInt(a.reader, a.out, "Rating (1-5)", d.Rating); err != nil {
		return err
	}
	if d.HoursPlayed, err = promptFloat(a.reader, a.out, "Hours played", d.HoursPlayed); err != nil {
		return err
	}
	if d.Difficulty, err = promptChoice(a.reader, a.out, "Difficulty", models.Difficulties, d.Difficulty, models.ParseDifficulty); err != nil {
		return err
	}
	if d.Recommends, err = promptBool(a.reader, a.out, "Would you recommend it", d.Recommends); err != nil {
		return err
	}
	if d.Body, err = GetMultiline(a.reader, "Review (10-2000 characters)", d.Body, a.out); err != nil {
		return err
	}

	return a.reviews.Update(func(in *models.ReviewInput) { *in = d })
}

// DeleteReview asks for confirmation and deletes the picked review.
func (a *App) DeleteReview(ctx context.Context, args []string) error {
	r, ok := a.reviewArg(args, "delreview <id|#>")
	if !ok {
		return nil
	}

	a.detail = a.detail.Apply(views.RequestDelete{ID: r.ID})
	confirmed, err := Confirm(a.reader, a.out, "Delete this review?")
	a.detail = a.detail.Apply(views.ResolveDelete{})
	if err != nil {
		confirmed = false
	}

	err = a.reviews.Delete(ctx, a.detail.GameID, r.ID, confirmed)
	switch {
	case errors.Is(err, services.ErrNotConfirmed):
		a.println("Cancelled.")
	case err == nil:
		a.renderDetail()
	}
	return nil
}
