package services

import (
	"math"
	"strconv"

	"stayease-backend/models"
)

// StarBreakdown is how an average renders on a five-star scale.
type StarBreakdown struct {
	Full  int `json:"full"`
	Half  int `json:"half"`
	Empty int `json:"empty"`
}

// AverageRating is the mean review rating, or 0 with no reviews.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// Stars shows floor(avg) full stars and a half star when the fraction is >= .5.
func Stars(avg float64) StarBreakdown {
	avg = math.Max(0, math.Min(5, avg))
	full := int(math.Floor(avg))
	half := 0
	if full < 5 && avg-float64(full) >= 0.5 {
		half = 1
	}
	return StarBreakdown{Full: full, Half: half, Empty: 5 - full - half}
}

// RatingDisplay formats the average with one decimal, e.g. "4.7".
func RatingDisplay(avg float64) string {
	return strconv.FormatFloat(math.Round(avg*10)/10, 'f', 1, 64)
}

// RoundAverage keeps two decimals for API responses, e.g. 4.67.
func RoundAverage(avg float64) float64 {
	return math.Round(avg*100) / 100
}

// RatingScore encodes the average as the integer stored on a listing (4.9 -> 49).
func RatingScore(avg float64) int {
	return int(math.Round(avg * 10))
}
