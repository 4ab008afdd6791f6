package backtest

import (
	"math"

	"github.com/yourusername/goalcast/internal/models"
)

// calculateCalibration buckets records by the top predicted probability and
// compares the mean predicted probability against the realized hit rate per
// bucket. A well-calibrated model shows near-zero diff in every bucket.
func calculateCalibration(records []models.BacktestRecord) []CalibrationBin {
	type bucket struct {
		predictedSum float64
		hits         int
		count        int
	}
	buckets := make([]bucket, len(calibrationRanges))

	for i := range records {
		top, prob := records[i].Prediction.TopOutcome()

		idx := int(prob * 100 / 20)
		if idx >= len(buckets) {
			idx = len(buckets) - 1
		}

		buckets[idx].predictedSum += prob
		buckets[idx].count++
		if top == records[i].Actual.Outcome {
			buckets[idx].hits++
		}
	}

	bins := make([]CalibrationBin, len(calibrationRanges))
	for i, rng := range calibrationRanges {
		bins[i] = CalibrationBin{Range: rng, Count: buckets[i].count}
		if buckets[i].count == 0 {
			continue
		}
		n := float64(buckets[i].count)
		bins[i].AvgPredicted = buckets[i].predictedSum / n * 100
		bins[i].AvgActual = float64(buckets[i].hits) / n * 100
		bins[i].Diff = math.Abs(bins[i].AvgPredicted - bins[i].AvgActual)
	}
	return bins
}
