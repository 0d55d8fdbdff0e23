package views

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gametracker/internal/models"
)

// StatusFilter restricts the library by completion status.
type StatusFilter int

const (
	FilterAll StatusFilter = iota
	FilterCompleted
	FilterPending
)

func (f StatusFilter) String() string {
	switch f {
	case FilterCompleted:
		return "completed"
	case FilterPending:
		return "pending"
	default:
		return "all"
	}
}

// ParseStatusFilter accepts all, completed or pending, and their Spanish forms.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "todos":
		return FilterAll, nil
	case "completed", "done", "completados":
		return FilterCompleted, nil
	case "pending", "pendientes":
		return FilterPending, nil
	}
	return FilterAll, fmt.Errorf("unknown filter %q (want all, completed or pending)", s)
}

func (f StatusFilter) match(g models.Game) bool {
	switch f {
	case FilterCompleted:
		return g.Completed
	case FilterPending:
		return !g.Completed
	default:
		return true
	}
}

// FilterGames applies the status filter and then the search term. The search
// is a case-insensitive substring match on title, genre, platform and
// developer. A blank search matches everything. Input order is preserved.
func FilterGames(games []models.Game, filter StatusFilter, search string) []models.Game {
	q := strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		if !filter.match(g) {
			continue
		}
		if q != "" && !gameMatches(g, q) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func gameMatches(g models.Game, q string) bool {
	return contains(g.Title, q) ||
		contains(string(g.Category), q) ||
		contains(string(g.Platform), q) ||
		contains(g.Developer, q)
}

// FilterReviews keeps reviews whose body or difficulty label contains search.
func FilterReviews(reviews []models.Review, search string) []models.Review {
	q := strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if q == "" || contains(r.Body, q) || contains(string(r.Difficulty), q) {
			out = append(out, r)
		}
	}
	return out
}

func contains(field, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(field), lowerQuery)
}

// GameCounts are the totals shown next to the status filter.
type GameCounts struct {
	Total     int
	Completed int
	Pending   int
}

// CountGames returns the totals shown next to the filter toggle.
func CountGames(games []models.Game) GameCounts {
	c := GameCounts{Total: len(games)}
	for _, g := range games {
		if g.Completed {
			c.Completed++
		}
	}
	c.Pending = c.Total - c.Completed
	return c
}
