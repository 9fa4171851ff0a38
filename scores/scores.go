// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scores

import (
	"math"
	"strconv"

	"github.com/dkaerit/pokerater/models"
)

// Band thresholds, shared by the chart dots and the rating cards
const (
	lowBelow = 2.0
	midBelow = 4.0
)

// Compute derives one score per group, in catalog order.
// A group without rated items gets an invalid Mean instead of 0.
func Compute(groups []models.Group, r models.Ratings) []models.Score {
	results := make([]models.Score, 0, len(groups))

	for _, g := range groups {
		// Only rated items count; unrated ones are not zeros
		var rated []float64
		for _, item := range g.Items {
			if v, ok := r[item.ID]; ok {
				rated = append(rated, float64(v))
			}
		}

		score := models.Score{
			GroupID:    g.ID,
			GroupName:  g.Name,
			Label:      Label(g.ID),
			RatedCount: len(rated),
			Total:      len(g.Items),
		}

		if len(rated) > 0 {
			m := Round2(mean(rated))
			score.Mean = models.NullMean{Value: m, Valid: true}
			score.Band = BandFor(m)
		}

		results = append(results, score)
	}

	return results
}

// Label is the short axis label of a group
func Label(groupID int) string {
	return "Gen " + strconv.Itoa(groupID)
}

// Round2 rounds to two decimals, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// BandFor maps a rating or average to its colour band.
func BandFor(v float64) models.Band {
	switch {
	case v < lowBelow:
		return models.BandLow
	case v < midBelow:
		return models.BandMid
	default:
		return models.BandHigh
	}
}

// Completion returns the rated share of a group in percent.
func Completion(s models.Score) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.RatedCount) / float64(s.Total) * 100
}

// mean calculates the arithmetic mean
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
