package views

import (
	"sort"

	"github.com/dmitrijs2005/gametracker/internal/models"
)

const topN = 5

// Bucket is one row of a top-N distribution. Share is Count relative to
// the total number of games, in percent.
type Bucket struct {
	Label string
	Count int
	Share float64
}

// Mood is the coarse feel of the average difficulty.
type Mood string

const (
	MoodRelaxed Mood = "relaxed"
	MoodSteady  Mood = "steady"
	MoodTense   Mood = "tense"
)

// Statistics aggregates the collection and its reviews.
type Statistics struct {
	TotalGames     int
	CompletedGames int
	PendingGames   int
	// CompletionRate is a percentage rounded to one decimal.
	CompletionRate float64

	ReviewCount   int
	TotalHours    float64
	TotalDays     float64
	AverageRating float64
	// MostPlayed is nil when there are no reviews.
	MostPlayed *models.Review

	TopGenres    []Bucket
	TopPlatforms []Bucket

	// AverageDifficulty is the unrounded mean ordinal (Fácil=1..Muy Difícil=4).
	AverageDifficulty float64
	// DifficultyBand is empty when there are no reviews.
	DifficultyBand models.Difficulty
}

// HasData reports whether there is anything to show at all.
func (s Statistics) HasData() bool { return s.TotalGames > 0 }

// HighPlaytime reports whether more than 100 hours were logged.
func (s Statistics) HighPlaytime() bool { return s.TotalHours > 100 }

// Mood grades the average difficulty for the statistics insight line.
func (s Statistics) Mood() Mood {
	switch {
	case s.AverageDifficulty <= 2:
		return MoodRelaxed
	case s.AverageDifficulty <= 3:
		return MoodSteady
	default:
		return MoodTense
	}
}

// ComputeStatistics derives Statistics from snapshots. It never fails.
func ComputeStatistics(games []models.Game, reviews []models.Review) Statistics {
	counts := CountGames(games)
	s := Statistics{
		TotalGames:     counts.Total,
		CompletedGames: counts.Completed,
		PendingGames:   counts.Pending,
		ReviewCount:    len(reviews),
	}
	if counts.Total > 0 {
		s.CompletionRate = round1(float64(counts.Completed) / float64(counts.Total) * 100)
	}

	genres := newCounter()
	platforms := newCounter()
	for _, g := range games {
		genres.add(string(g.Category))
		platforms.add(string(g.Platform))
	}
	s.TopGenres = genres.top(topN, counts.Total)
	s.TopPlatforms = platforms.top(topN, counts.Total)

	if len(reviews) == 0 {
		return s
	}

	ratingSum, difficultySum := 0, 0
	most := 0
	for i, r := range reviews {
		s.TotalHours += r.HoursPlayed
		ratingSum += r.Rating
		difficultySum += r.Difficulty.Ordinal()
		if r.HoursPlayed > reviews[most].HoursPlayed {
			most = i
		}
	}
	mp := reviews[most]
	s.MostPlayed = &mp
	s.TotalDays = round1(s.TotalHours / 24)
	s.AverageRating = round1(float64(ratingSum) / float64(len(reviews)))
	s.AverageDifficulty = float64(difficultySum) / float64(len(reviews))
	s.DifficultyBand = band(s.AverageDifficulty)
	return s
}

func band(avg float64) models.Difficulty {
	switch {
	case avg <= 1.5:
		return models.DifficultyEasy
	case avg <= 2.5:
		return models.DifficultyNormal
	case avg <= 3.5:
		return models.DifficultyHard
	default:
		return models.DifficultyVeryHard
	}
}

// counter counts labels and remembers first-seen order for tie-breaking.
type counter struct {
	order []string
	n     map[string]int
}

func newCounter() *counter { return &counter{n: make(map[string]int)} }

func (c *counter) add(label string) {
	if _, ok := c.n[label]; !ok {
		c.order = append(c.order, label)
	}
	c.n[label]++
}

func (c *counter) top(limit, total int) []Bucket {
	out := make([]Bucket, 0, len(c.order))
	for _, l := range c.order {
		b := Bucket{Label: l, Count: c.n[l]}
		if total > 0 {
			b.Share = float64(b.Count) / float64(total) * 100
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
