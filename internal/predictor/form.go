package predictor

import (
	"github.com/yourusername/goalcast/internal/models"
)

// Fewer than this many recent results carries no signal
const minFormMatches = 3

// FormImpact converts a most-recent-first run of results into a [-1, 1]
// scalar. Recent matches weigh more (weights 5/4/3/2/1 by default); wins
// count +1, draws 0, losses -1. Fewer than three results yields 0.
func FormImpact(form []models.FormOutcome, weights []float64) float64 {
	if len(form) < minFormMatches {
		return 0
	}

	score := 0.0
	totalWeight := 0.0

	for i, outcome := range form {
		if i >= len(weights) {
			break
		}
		w := weights[i]
		switch outcome {
		case models.FormWin:
			score += w
		case models.FormLoss:
			score -= w
		}
		totalWeight += w
	}

	if totalWeight == 0 {
		return 0
	}
	return clamp(score/totalWeight, -1, 1)
}
