package backtest

import (
	"math"

	"github.com/yourusername/goalcast/internal/models"
)

// Log-loss probabilities are clamped away from 0 and 1 to keep the loss finite
const (
	logLossFloor = 0.01
	logLossCeil  = 0.99
)

// calculateAccuracy computes top-1 and top-2 hit rates of the 1X2 prediction
// against the realized outcome
func calculateAccuracy(records []models.BacktestRecord) Accuracy {
	acc := Accuracy{Total: len(records)}
	if acc.Total == 0 {
		return acc
	}

	for i := range records {
		actual := records[i].Actual.Outcome
		top, _ := records[i].Prediction.TopOutcome()
		second := records[i].Prediction.SecondOutcome()

		if top == actual {
			acc.Top1Count++
			acc.Top2Count++
		} else if second == actual {
			acc.Top2Count++
		}
	}

	acc.Top1Pct = float64(acc.Top1Count) / float64(acc.Total) * 100
	acc.Top2Pct = float64(acc.Top2Count) / float64(acc.Total) * 100
	return acc
}

// calculateBrierScore returns the mean squared error between each 1X2
// probability vector and the one-hot realized outcome. 0 is perfect, 0.25 is
// a coin flip.
func calculateBrierScore(records []models.BacktestRecord) float64 {
	if len(records) == 0 {
		return 0
	}

	sum := 0.0
	for i := range records {
		p := &records[i].Prediction
		actual := records[i].Actual.Outcome

		for _, outcome := range []models.Outcome{models.OutcomeHome, models.OutcomeDraw, models.OutcomeAway} {
			target := 0.0
			if outcome == actual {
				target = 1.0
			}
			diff := p.OutcomeProb(outcome) - target
			sum += diff * diff
		}
	}
	return sum / float64(len(records))
}

// calculateLogLoss returns the mean negative log probability assigned to the
// realized outcome
func calculateLogLoss(records []models.BacktestRecord) float64 {
	if len(records) == 0 {
		return 0
	}

	sum := 0.0
	for i := range records {
		prob := records[i].Prediction.OutcomeProb(records[i].Actual.Outcome)
		prob = math.Max(logLossFloor, math.Min(logLossCeil, prob))
		sum += -math.Log(prob)
	}
	return sum / float64(len(records))
}
