package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yourusername/goalcast/internal/models"
)

func TestOutcomeProbabilitiesSumToOne(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name       string
		lambdaHome float64
		lambdaAway float64
	}{
		{"balanced", 1.3, 1.3},
		{"home favorite", 2.4, 0.8},
		{"away favorite", 0.9, 2.1},
		{"low scoring", 0.5, 0.4},
		{"high scoring", 3.5, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home, draw, away := OutcomeProbabilities(tt.lambdaHome, tt.lambdaAway, p)

			assert.InDelta(t, 1.0, home+draw+away, 1e-9, "1X2 probabilities must sum to 1")
			assert.Greater(t, home, 0.0)
			assert.Greater(t, draw, 0.0)
			assert.Greater(t, away, 0.0)
		})
	}
}

func TestOutcomeProbabilitiesFavorTheStrongerSide(t *testing.T) {
	p := DefaultParams()

	home, _, away := OutcomeProbabilities(2.2, 0.9, p)
	assert.Greater(t, home, away, "higher home rate must yield higher home win probability")

	home, _, away = OutcomeProbabilities(0.9, 2.2, p)
	assert.Greater(t, away, home)
}

func TestDixonColesCorrectionBoostsDraws(t *testing.T) {
	p := DefaultParams()

	uncorrected := p
	uncorrected.Rho = -1e-12 // effectively independent Poisson

	_, drawCorrected, _ := OutcomeProbabilities(1.69, 1.30, p)
	_, drawPlain, _ := OutcomeProbabilities(1.69, 1.30, uncorrected)

	assert.Greater(t, drawCorrected, drawPlain,
		"negative rho must shift mass toward the diagonal low-score cells")
}

func TestDixonColesTau(t *testing.T) {
	const rho = -0.11

	tests := []struct {
		name     string
		home     int
		away     int
		expected float64
	}{
		{"0-0 boosted", 0, 0, 1 - 1.5*1.2*rho},
		{"0-1 damped", 0, 1, 1 + 1.5*rho},
		{"1-0 damped", 1, 0, 1 + 1.2*rho},
		{"1-1 boosted", 1, 1, 1 - rho},
		{"2-1 untouched", 2, 1, 1.0},
		{"0-3 untouched", 0, 3, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, dixonColesTau(tt.home, tt.away, 1.5, 1.2, rho), 1e-12)
		})
	}
}

func TestExactScoresDeterministicTopN(t *testing.T) {
	p := DefaultParams()

	scores := ExactScores(1.69, 1.30, p)
	assert.Len(t, scores, p.TopScorelines)

	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i-1].Probability, scores[i].Probability,
			"exact scores must be sorted by probability descending")
	}

	again := ExactScores(1.69, 1.30, p)
	assert.Equal(t, scores, again, "identical inputs must list identical scorelines")
}

func TestExactScoresMostLikelyIsPlausible(t *testing.T) {
	p := DefaultParams()

	scores := ExactScores(1.2, 1.1, p)
	assert.Contains(t, []string{"1-1", "1-0", "0-0"}, scores[0].Score)
}

func TestOverUnderPairsSumToOne(t *testing.T) {
	p := DefaultParams()
	ctx := ExtractLeagueContext(nil)

	out := OverUnderProbabilities(1.69, 1.30, ctx, p)
	assert.Len(t, out, 4)

	for line, pair := range out {
		assert.InDelta(t, 1.0, pair.Over+pair.Under, 1e-9, "line %s", line)
		assert.GreaterOrEqual(t, pair.Over, 0.0)
		assert.LessOrEqual(t, pair.Over, 1.0)
	}
}

func TestOverUnderBlendsLeagueBaseline(t *testing.T) {
	p := DefaultParams()

	lowCtx := ExtractLeagueContext(nil)
	lowCtx.OverBaseline["2.5"] = 0.10

	highCtx := ExtractLeagueContext(nil)
	highCtx.OverBaseline["2.5"] = 0.90

	low := OverUnderProbabilities(1.5, 1.2, lowCtx, p)["2.5"]
	high := OverUnderProbabilities(1.5, 1.2, highCtx, p)["2.5"]

	assert.Greater(t, high.Over, low.Over,
		"a higher league baseline must pull the blended over probability up")
	assert.InDelta(t, 0.3*(0.90-0.10), high.Over-low.Over, 1e-9,
		"baseline share of the blend is 30%")
}

func TestBTSProbabilities(t *testing.T) {
	p := DefaultParams()
	ctx := ExtractLeagueContext(nil)

	match := &models.Match{
		HomeStats: &models.TeamStats{BTSPercentage: 60},
		AwayStats: &models.TeamStats{BTSPercentage: 40},
	}

	yes, no := BTSProbabilities(1.69, 1.30, match, ctx, p)
	assert.InDelta(t, 1.0, yes+no, 1e-9)
	assert.Greater(t, yes, 0.0)
	assert.Less(t, yes, 1.0)

	// Two prolific attacks should make both-teams-score likely
	highYes, _ := BTSProbabilities(2.5, 2.5, match, ctx, p)
	lowYes, _ := BTSProbabilities(0.5, 0.5, match, ctx, p)
	assert.Greater(t, highYes, lowYes)
}

func TestBTSHistoricalFallback(t *testing.T) {
	p := DefaultParams()
	ctx := ExtractLeagueContext(nil)

	withStats := &models.Match{
		HomeStats: &models.TeamStats{BTSPercentage: 90},
		AwayStats: &models.TeamStats{BTSPercentage: 90},
	}
	without := &models.Match{}

	yesWith, _ := BTSProbabilities(1.5, 1.2, withStats, ctx, p)
	yesWithout, _ := BTSProbabilities(1.5, 1.2, without, ctx, p)

	assert.Greater(t, yesWith, yesWithout,
		"team BTS history above the neutral default must raise the estimate")
}
