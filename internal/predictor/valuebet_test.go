package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/goalcast/internal/models"
)

func TestEvaluateMarketSurfacesClearEdge(t *testing.T) {
	p := DefaultParams()

	// Model 60% vs implied 40% at decimal 2.50
	bet, ok := evaluateMarket(marketCandidate{models.MarketHomeWin, 0.60, 2.50}, 80, p)
	require.True(t, ok)

	assert.Equal(t, models.MarketHomeWin, bet.Market)
	assert.InDelta(t, 0.40, bet.ImpliedProbability, 1e-9)
	assert.InDelta(t, 20.0, bet.EdgePct, 1e-9)
	assert.InDelta(t, 0.50, bet.ExpectedValue, 1e-9)
	assert.InDelta(t, 40.0, bet.AdjustedEdgePct, 1e-9)
	// Kelly (0.6*2.5-1)/(2.5-1) = 33.3%, capped
	assert.Equal(t, p.KellyCapPct, bet.KellyPct)
	assert.Equal(t, RiskMedium, bet.RiskTier)
	assert.Equal(t, models.ConfidenceVeryHigh, bet.ConfidenceTier)
}

func TestEvaluateMarketRejections(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name       string
		prob       float64
		odds       float64
		confidence float64
	}{
		{"market not offered", 0.60, 0, 80},
		{"odds above ceiling", 0.30, 5.5, 80},
		{"longshot probability", 0.20, 4.0, 80},
		{"no edge over implied", 0.38, 2.5, 80},
		{"edge below tiered minimum", 0.42, 2.45, 80},
		{"low tier signal suppressed", 0.56, 2.0, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := evaluateMarket(marketCandidate{models.MarketHomeWin, tt.prob, tt.odds}, tt.confidence, p)
			assert.False(t, ok)
		})
	}
}

func TestMinEdgeForOddsTiers(t *testing.T) {
	assert.Equal(t, 0.05, minEdgeForOdds(1.5))
	assert.Equal(t, 0.05, minEdgeForOdds(2.5))
	assert.Equal(t, 0.08, minEdgeForOdds(2.6))
	assert.Equal(t, 0.08, minEdgeForOdds(3.0))
	assert.Equal(t, 0.10, minEdgeForOdds(3.1))
	assert.Equal(t, 0.10, minEdgeForOdds(5.0))
}

func TestKellyNeverExceedsCap(t *testing.T) {
	p := DefaultParams()

	for _, c := range []marketCandidate{
		{models.MarketHomeWin, 0.90, 2.0},
		{models.MarketOver25, 0.80, 3.0},
		{models.MarketBTSYes, 0.70, 4.0},
	} {
		bet, ok := evaluateMarket(c, 90, p)
		if !ok {
			continue
		}
		assert.LessOrEqual(t, bet.KellyPct, p.KellyCapPct)
		assert.GreaterOrEqual(t, bet.KellyPct, 0.0)
	}
}

func TestKellyClampAtExtremeEdge(t *testing.T) {
	p := DefaultParams()
	p.ValueMaxOdds = 30 // lift the price ceiling to isolate the Kelly clamp

	// Raw Kelly (0.95*20-1)/(20-1) is about 95%
	bet, ok := evaluateMarket(marketCandidate{models.MarketHomeWin, 0.95, 20.0}, 90, p)
	require.True(t, ok)
	assert.Equal(t, 25.0, bet.KellyPct)
}

func TestDetectValueBetsBelowConfidenceFloor(t *testing.T) {
	p := DefaultParams()
	match := &models.Match{
		Odds: &models.MatchOdds{HomeWin: 2.5, Draw: 3.3, AwayWin: 3.0},
	}

	bets := DetectValueBets(match, 0.60, 0.22, 0.18, nil, 0.5, 39, p)
	assert.Empty(t, bets, "no bets may be reported under the 40-point confidence floor")
}

func TestDetectValueBetsNoOdds(t *testing.T) {
	p := DefaultParams()
	bets := DetectValueBets(&models.Match{}, 0.60, 0.22, 0.18, nil, 0.5, 80, p)
	assert.Empty(t, bets)
}

func TestDetectValueBetsSortedByAdjustedEdge(t *testing.T) {
	p := DefaultParams()

	match := &models.Match{
		Odds: &models.MatchOdds{
			HomeWin: 2.2,
			Draw:    3.4,
			AwayWin: 4.0,
			Over25:  2.4,
			Under25: 1.6,
			BTSYes:  2.1,
			BTSNo:   1.7,
		},
	}
	overUnder := map[string]models.OverUnderProb{
		"2.5": {Over: 0.62, Under: 0.38},
	}

	bets := DetectValueBets(match, 0.58, 0.24, 0.18, overUnder, 0.63, 85, p)
	require.NotEmpty(t, bets)

	for i := 1; i < len(bets); i++ {
		assert.GreaterOrEqual(t, bets[i-1].AdjustedEdgePct, bets[i].AdjustedEdgePct,
			"value bets must be ordered by adjusted edge descending")
	}
	for _, bet := range bets {
		assert.NotEqual(t, models.ConfidenceLow, bet.ConfidenceTier)
		assert.LessOrEqual(t, bet.BookmakerOdds, p.ValueMaxOdds)
		assert.GreaterOrEqual(t, bet.ModelProbability, p.ValueMinProbability)
	}
}

func TestRiskTiers(t *testing.T) {
	assert.Equal(t, RiskLow, riskTier(0.65))
	assert.Equal(t, RiskMedium, riskTier(0.50))
	assert.Equal(t, RiskHigh, riskTier(0.40))
}
