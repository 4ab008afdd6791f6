package predictor

import (
	"math"

	"github.com/yourusername/goalcast/internal/models"
)

// Confidence label thresholds
const (
	veryHighThreshold = 75
	highThreshold     = 60
	mediumThreshold   = 40
	lowThreshold      = 25
)

// PredictionVariance estimates how uncertain a prediction is, 0 (certain) to
// 1 (maximally uncertain), as the mean of four categorical signals: the
// expected-goal gap, data completeness, league reliability, and whether the
// total sits in a hard-to-call scoring band.
func PredictionVariance(match *models.Match, homeXG, awayXG float64, ctx LeagueContext) float64 {
	factors := make([]float64, 0, 4)

	// Evenly matched sides are the hardest to call
	xgDiff := math.Abs(homeXG - awayXG)
	switch {
	case xgDiff < 0.3:
		factors = append(factors, 0.8)
	case xgDiff < 0.6:
		factors = append(factors, 0.5)
	default:
		factors = append(factors, 0.2)
	}

	sources := dataSourceCount(match)
	switch {
	case sources >= 3:
		factors = append(factors, 0.2)
	case sources == 2:
		factors = append(factors, 0.5)
	default:
		factors = append(factors, 0.8)
	}

	switch ctx.Reliability {
	case ReliabilityHigh:
		factors = append(factors, 0.2)
	case ReliabilityMedium:
		factors = append(factors, 0.4)
	default:
		factors = append(factors, 0.7)
	}

	totalXG := homeXG + awayXG
	switch {
	case totalXG < 1.5:
		factors = append(factors, 0.7)
	case totalXG > 3.5:
		factors = append(factors, 0.6)
	default:
		factors = append(factors, 0.3)
	}

	sum := 0.0
	for _, f := range factors {
		sum += f
	}
	return sum / float64(len(factors))
}

// ConfidenceScore maps variance and data quality to a 0-100 score:
// the inverted variance plus bonuses for a clear expected-goal gap and for
// each available auxiliary source, minus a penalty for chaotic leagues.
func ConfidenceScore(match *models.Match, homeXG, awayXG, variance float64, ctx LeagueContext) float64 {
	score := (1 - variance) * 100

	xgDiff := math.Abs(homeXG - awayXG)
	if xgDiff > 1.0 {
		score += 10
	} else if xgDiff > 0.7 {
		score += 5
	}

	if match.HasStandings() {
		score += 5
	}
	if match.LeagueStats != nil {
		score += 5
	}
	if match.HasFullForm() {
		score += 5
	}

	if ctx.Unpredictability > 0.6 {
		score -= 10
	}

	return clamp(score, 0, 100)
}

// ConfidenceLabel converts a 0-100 score to its ordinal label
func ConfidenceLabel(score float64) string {
	switch {
	case score >= veryHighThreshold:
		return models.ConfidenceVeryHigh
	case score >= highThreshold:
		return models.ConfidenceHigh
	case score >= mediumThreshold:
		return models.ConfidenceMedium
	case score >= lowThreshold:
		return models.ConfidenceLow
	default:
		return models.ConfidenceVeryLow
	}
}

// dataSourceCount counts the auxiliary data sources present on a fixture:
// standings, venue-split statistics, full five-match form, league statistics
func dataSourceCount(match *models.Match) int {
	count := 0
	if match.HasStandings() {
		count++
	}
	if match.HasVenueStats() {
		count++
	}
	if match.HasFullForm() {
		count++
	}
	if match.LeagueStats != nil {
		count++
	}
	return count
}
