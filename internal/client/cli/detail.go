package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gametracker/internal/client/store"
	"github.com/dmitrijs2005/gametracker/internal/client/views"
	"github.com/dmitrijs2005/gametracker/internal/models"
)

// Show opens the detail overlay of a game.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println("Usage: show <id|#>")
		return nil
	}
	g, ok := a.resolveGame(args)
	if !ok {
		a.println("No such game:", args[0])
		return nil
	}

	a.closeDetail()
	a.library = a.library.Apply(views.OpenDetail{GameID: g.ID})
	a.detail = a.detail.Apply(views.OpenDetail{GameID: g.ID})
	return a.loadDetail(ctx)
}

// loadDetail fetches the open game and its reviews under the overlay's
// context, so that closing the overlay discards late results.
func (a *App) loadDetail(ctx context.Context) error {
	id := a.detail.GameID
	if a.detailCancel != nil {
		a.detailCancel()
	}
	dctx, cancel := context.WithCancel(ctx)
	a.detailCancel = cancel

	if err := a.store.RefreshGame(dctx, id); err != nil {
		a.println("Could not load the game:", describe(err))
	}
	if err := a.store.RefreshReviews(dctx, store.ReviewsOf(id)); err != nil {
		a.println("Could not load the reviews:", describe(err))
	}
	a.renderDetail()
	return nil
}

// Close closes the detail overlay.
func (a *App) Close(ctx context.Context) error {
	if a.detail.GameID == "" {
		a.println("No game is open.")
		return nil
	}
	a.closeDetail()
	return a.List(ctx)
}

func (a *App) closeDetail() {
	if a.detailCancel != nil {
		a.detailCancel()
		a.detailCancel = nil
	}
	if a.detail.GameID != "" {
		a.store.Forget(a.detail.GameID)
	}
	a.detail = a.detail.Apply(views.CloseDetail{})
	a.library = a.library.Apply(views.CloseDetail{})
}

func (a *App) renderDetail() {
	id := a.detail.GameID
	g, ok := a.store.Game(id)
	if !ok {
		if st, _ := a.store.GameState(id); st == store.Loading {
			a.println("Loading...")
		}
		return
	}

	all := a.store.Reviews(store.ReviewsOf(id))
	avg := views.AverageRating(all)

	a.printf("\n%s (%d)  [%s]\n", g.Title, g.ReleaseYear, status(g))
	a.printf("  Genre: %s   Platform: %s   Developer: %s\n", g.Category, g.Platform, g.Developer)
	a.printf("  Cover: %s\n", g.CoverOrPlaceholder(a.config.PlaceholderCoverURL))
	if g.Description != "" {
		a.println()
		for _, line := range strings.Split(g.Description, "\n") {
			a.println("  " + line)
		}
	}
	a.println()
	a.printf("  Rating: %s %.1f (%s)\n", stars(views.Stars(avg)), avg, views.ReviewCountLabel(len(all)))

	a.renderReviewList()
}

func (a *App) renderReviewList() {
	id := a.detail.GameID
	st, lastErr := a.store.ReviewsState(store.ReviewsOf(id))
	if st == store.Failed {
		a.println("  Reviews unavailable:", describe(lastErr))
		return
	}

	visible := a.detail.Visible(a.store.Reviews(store.ReviewsOf(id)))
	header := "\nReviews"
	if a.detail.Search != "" {
		header += fmt.Sprintf(" matching %q", a.detail.Search)
	}
	a.println(header + ":")
	if len(visible) == 0 {
		if a.detail.Search != "" {
			a.println("  No reviews match.")
		} else {
			a.println("  No reviews yet. Use 'addreview' to write the first one.")
		}
		return
	}
	for i, r := range visible {
		a.printReview(i+1, r, "")
	}
}

func (a *App) printReview(n int, r models.Review, gameTitle string) {
	rec := "would not recommend"
	if r.Recommends {
		rec = "recommends"
	}
	date := ""
	if !r.CreatedAt.IsZero() {
		date = "  " + r.CreatedAt.Local().Format("2006-01-02")
	}
	prefix := ""
	if gameTitle != "" {
		prefix = gameTitle + "  "
	}
	a.printf("  %d. %s%s  %s  %.1f h  %s%s  [%s]\n", n, prefix, stars(r.Rating), r.Difficulty, r.HoursPlayed, rec, date, r.ID)
	for _, line := range strings.Split(r.Body, "\n") {
		a.println("     " + line)
	}
}

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
