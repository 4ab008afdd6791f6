// Package metrics provides a centralized Prometheus metrics registry for the
// prediction and backtesting engines.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PredictionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "goalcast",
		Name:      "predictions_total",
		Help:      "Total number of predictions produced by league and confidence label",
	}, []string{"league", "confidence"})

	ValueBetsSurfacedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "goalcast",
		Name:      "value_bets_surfaced_total",
		Help:      "Total number of value bets surfaced by market",
	}, []string{"market"})

	DegradedInputsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "goalcast",
		Name:      "degraded_inputs_total",
		Help:      "Total number of missing inputs replaced by neutral defaults, by component",
	}, []string{"component"})
)

// Histogram metrics
var (
	PredictionConfidence = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "goalcast",
		Name:      "prediction_confidence",
		Help:      "Confidence scores of produced predictions by league",
		Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	}, []string{"league"})
)

// Registry returns the singleton registry with all engine metrics registered
func Registry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(PredictionsTotal)
		registry.MustRegister(ValueBetsSurfacedTotal)
		registry.MustRegister(DegradedInputsTotal)
		registry.MustRegister(PredictionConfidence)

		registry.MustRegister(BacktestRunsTotal)
		registry.MustRegister(BacktestMatchesAnalyzed)
		registry.MustRegister(BacktestROI)
	})
	return registry
}

// Handler returns an HTTP handler exposing the registry in Prometheus format
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry(), promhttp.HandlerOpts{})
}

// RecordPrediction records one produced prediction
func RecordPrediction(league, confidence string, score float64) {
	PredictionsTotal.WithLabelValues(league, confidence).Inc()
	PredictionConfidence.WithLabelValues(league).Observe(score)
}

// RecordValueBet records one surfaced value bet
func RecordValueBet(market string) {
	ValueBetsSurfacedTotal.WithLabelValues(market).Inc()
}

// RecordDegradedInput records a neutral default substitution
func RecordDegradedInput(component string) {
	DegradedInputsTotal.WithLabelValues(component).Inc()
}
