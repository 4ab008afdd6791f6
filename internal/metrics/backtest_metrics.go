package metrics

import "github.com/prometheus/client_golang/prometheus"

// Backtest counter vectors
var (
	BacktestRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "goalcast",
		Name:      "backtest_runs_total",
		Help:      "Total number of analyzer runs by status",
	}, []string{"status"})

	BacktestMatchesAnalyzed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "goalcast",
		Name:      "backtest_matches_analyzed_total",
		Help:      "Total number of archived matches that passed analyzer filters",
	})
)

// Backtest gauge vectors
var (
	BacktestROI = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "goalcast",
		Name:      "backtest_roi_percent",
		Help:      "ROI of the most recent analyzer run by staking plan",
	}, []string{"staking"})
)

// RecordBacktestRun records an analyzer run.
// status should be one of: "success", "empty"
func RecordBacktestRun(status string, matches int, roi float64, useKelly bool) {
	BacktestRunsTotal.WithLabelValues(status).Inc()
	BacktestMatchesAnalyzed.Add(float64(matches))

	staking := "flat"
	if useKelly {
		staking = "kelly"
	}
	BacktestROI.WithLabelValues(staking).Set(roi)
}
