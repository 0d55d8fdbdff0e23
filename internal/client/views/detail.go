package views

import (
	"fmt"
	"math"

	"github.com/dmitrijs2005/gametracker/internal/models"
)

// AverageRating is the mean rating rounded to one decimal, 0 when empty.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return round1(float64(sum) / float64(len(reviews)))
}

// Stars is the average rounded to whole stars.
func Stars(avg float64) int {
	return int(math.Round(avg))
}

// ReviewCountLabel renders n with singular or plural wording.
func ReviewCountLabel(n int) string {
	if n == 1 {
		return "1 review"
	}
	return fmt.Sprintf("%d reviews", n)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
