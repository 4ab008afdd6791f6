package predictor

import (
	"fmt"

	"github.com/yourusername/goalcast/internal/models"
)

// Recommend composes the model outputs into a single verdict string.
// The ladder is evaluated top-down and the first rung that matches wins:
// trusted value bet, dominant outcome, tentative value bet, uncertainty
// warning, balanced match, generic fallback.
func Recommend(home, draw, away float64, valueBets []models.ValueBet, confidence, variance float64) string {
	if len(valueBets) > 0 && confidence >= 50 {
		best := valueBets[0]
		if best.ConfidenceTier == models.ConfidenceVeryHigh || best.ConfidenceTier == models.ConfidenceHigh {
			return fmt.Sprintf("VALUE BET: %s @ %.2f (edge %.1f%%, Kelly %.1f%%)",
				best.Market, best.BookmakerOdds, best.AdjustedEdgePct, best.KellyPct)
		}
	}

	if confidence >= 60 && variance < 0.4 {
		outcome, prob := topOutcome(home, draw, away)
		if prob > 0.60 {
			return fmt.Sprintf("%s - high confidence (%.1f%%)", outcomeVerdict(outcome), prob*100)
		}
		if prob > 0.50 {
			return fmt.Sprintf("%s - medium confidence (%.1f%%)", outcomeVerdict(outcome), prob*100)
		}
	}

	if len(valueBets) > 0 && confidence >= 40 {
		best := valueBets[0]
		return fmt.Sprintf("Possible value: %s @ %.2f (edge %.1f%%)",
			best.Market, best.BookmakerOdds, best.AdjustedEdgePct)
	}

	if variance > 0.6 || confidence < 40 {
		return "Uncertain match - high variance, recommend caution"
	}

	if diff := home - away; diff < 0.15 && diff > -0.15 {
		if draw > 0.30 {
			return fmt.Sprintf("Balanced match - draw likely (%.1f%%)", draw*100)
		}
		return "Balanced match - no clear favorite"
	}

	return "No strong signal - review odds manually"
}

func topOutcome(home, draw, away float64) (models.Outcome, float64) {
	outcome, prob := models.OutcomeHome, home
	if draw > prob {
		outcome, prob = models.OutcomeDraw, draw
	}
	if away > prob {
		outcome, prob = models.OutcomeAway, away
	}
	return outcome, prob
}

func outcomeVerdict(o models.Outcome) string {
	switch o {
	case models.OutcomeHome:
		return "HOME WIN"
	case models.OutcomeAway:
		return "AWAY WIN"
	default:
		return "DRAW"
	}
}
