// Package backtest replays archived predictions against realized outcomes
// and measures calibration, accuracy and value-bet profitability under
// arbitrary filters.
package backtest

import (
	"github.com/sirupsen/logrus"
	"github.com/yourusername/goalcast/internal/metrics"
	"github.com/yourusername/goalcast/internal/models"
)

// Analyzer computes backtest results from archived records. Stateless:
// every Analyze call is fully derived from its arguments, so concurrent
// analyses over different filters need no synchronization.
type Analyzer struct {
	logger *logrus.Logger
}

// NewAnalyzer creates a backtest analyzer
func NewAnalyzer(logger *logrus.Logger) *Analyzer {
	if logger == nil {
		logger = logrus.New()
	}
	return &Analyzer{logger: logger}
}

// Analyze filters the archived records and computes every metric of the
// result. A filter set that eliminates all records yields the well-defined
// empty result, not an error.
func (a *Analyzer) Analyze(records []models.BacktestRecord, filter Filter) Result {
	filter = filter.Clone()
	filtered := filter.apply(records)

	if len(filtered) == 0 {
		a.logger.WithField("original", len(records)).Debug("No records matched backtest filters")
		metrics.RecordBacktestRun("empty", 0, 0, filter.Staking.UseKelly)
		return emptyResult(len(records))
	}

	staking := Staking{StakePerBet: filter.stakePerBet(), UseKelly: filter.Staking.UseKelly}

	result := Result{
		TotalMatches:    len(filtered),
		OriginalMatches: len(records),
		Accuracy:        calculateAccuracy(filtered),
		BrierScore:      calculateBrierScore(filtered),
		LogLoss:         calculateLogLoss(filtered),
		Calibration:     calculateCalibration(filtered),
		ValueBets:       simulateValueBets(filtered, staking),
		ByConfidence:    breakdownByConfidence(filtered, staking),
		ByLeague:        breakdownByLeague(filtered, staking),
		ByMarket:        breakdownByMarket(filtered, staking),
	}

	metrics.RecordBacktestRun("success", result.TotalMatches, result.ValueBets.ROI, staking.UseKelly)

	a.logger.WithFields(logrus.Fields{
		"matches":  result.TotalMatches,
		"original": result.OriginalMatches,
		"top1":     result.Accuracy.Top1Pct,
		"brier":    result.BrierScore,
		"roi":      result.ValueBets.ROI,
	}).Info("Backtest analysis complete")

	return result
}
