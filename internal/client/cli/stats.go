package cli

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/gametracker/internal/client/store"
	"github.com/dmitrijs2005/gametracker/internal/client/views"
	"golang.org/x/term"
)

// termWidth is a test seam for the terminal width.
var termWidth = func() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// Stats refreshes games and reviews and prints the statistics report.
func (a *App) Stats(ctx context.Context) error {
	if err := a.store.RefreshGames(ctx); err != nil {
		a.println("Could not refresh games:", describe(err))
	}
	if err := a.store.RefreshReviews(ctx, store.AllReviews); err != nil {
		a.println("Could not refresh reviews:", describe(err))
	}
	if st, _ := a.store.GamesState(); st != store.Ready {
		return nil
	}

	s := views.ComputeStatistics(a.store.Games(), a.store.Reviews(store.AllReviews))
	a.renderStats(s)
	return nil
}

func (a *App) renderStats(s views.Statistics) {
	a.println("\nPersonal statistics")
	if !s.HasData() {
		a.println("No data yet. Add some games to see your statistics.")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Games\t%d\n", s.TotalGames)
	fmt.Fprintf(tw, "  Completed\t%d (%.1f%%)\n", s.CompletedGames, s.CompletionRate)
	fmt.Fprintf(tw, "  Pending\t%d\n", s.PendingGames)
	fmt.Fprintf(tw, "  Hours played\t%.1f (%.1f days)\n", s.TotalHours, s.TotalDays)
	fmt.Fprintf(tw, "  Average rating\t%s %.1f (%s)\n", stars(views.Stars(s.AverageRating)), s.AverageRating, views.ReviewCountLabel(s.ReviewCount))
	if s.MostPlayed != nil {
		fmt.Fprintf(tw, "  Most played\t%s, %.1f h\n", gameTitle(*s.MostPlayed, a.titles()), s.MostPlayed.HoursPlayed)
	}
	if s.DifficultyBand != "" {
		fmt.Fprintf(tw, "  Difficulty\t%s (%.1f, %s)\n", s.DifficultyBand, s.AverageDifficulty, s.Mood())
	}
	_ = tw.Flush()

	width := barWidth(termWidth())
	a.renderBuckets("Top genres", s.TopGenres, width)
	a.renderBuckets("Top platforms", s.TopPlatforms, width)

	if s.HighPlaytime() {
		a.println("\nWow! More than 100 hours played.")
	}
}

func (a *App) renderBuckets(title string, buckets []views.Bucket, width int) {
	if len(buckets) == 0 {
		return
	}
	a.println("\n" + title)
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, b := range buckets {
		fmt.Fprintf(tw, "  %s\t%s\t%d (%.0f%%)\n", b.Label, bar(b.Share, width), b.Count, b.Share)
	}
	_ = tw.Flush()
}

// barWidth leaves room for labels and counts.
func barWidth(termCols int) int {
	w := termCols - 40
	if w < 10 {
		return 10
	}
	if w > 40 {
		return 40
	}
	return w
}

func bar(share float64, width int) string {
	filled := int(math.Round(share / 100 * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
