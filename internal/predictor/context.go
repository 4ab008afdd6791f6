package predictor

import (
	"github.com/yourusername/goalcast/internal/models"
)

// League reliability tiers
const (
	ReliabilityHigh   = "High"
	ReliabilityMedium = "Medium"
	ReliabilityLow    = "Low"
)

// Neutral defaults applied when league statistics are missing
const (
	defaultLeagueAvgGoals = 2.6
	defaultHomeWinPct     = 45.0
	defaultDrawPct        = 27.0
	defaultAwayWinPct     = 28.0
	defaultBaseline       = 0.5
)

// LeagueContext represents the adjustment factors derived once per league
// and treated as read-only for every prediction in a batch.
type LeagueContext struct {
	AvgGoals     float64
	AvgHomeGoals float64
	AvgAwayGoals float64

	HomeWinPct float64
	DrawPct    float64
	AwayWinPct float64

	HomeAdvantageFactor float64 // avg home goals / avg away goals
	DrawFactor          float64 // draw pct relative to the 27% norm

	Unpredictability float64 // 0.2 (settled) .. 0.8 (chaotic)
	OverBaseline     map[string]float64
	BTSBaseline      float64
	Reliability      string

	Derived bool // false when built entirely from defaults
}

// Historical over rates for European leagues, used when the competition
// supplies no over/under split
var defaultOverBaselines = map[string]float64{
	"0.5": 0.90,
	"1.5": 0.75,
	"2.5": 0.50,
	"3.5": 0.25,
}

// ExtractLeagueContext converts raw league statistics into a context bundle.
// Missing or zero fields keep their neutral defaults.
func ExtractLeagueContext(stats *models.LeagueStats) LeagueContext {
	ctx := LeagueContext{
		AvgGoals:            defaultLeagueAvgGoals,
		AvgHomeGoals:        1.4,
		AvgAwayGoals:        1.2,
		HomeWinPct:          defaultHomeWinPct,
		DrawPct:             defaultDrawPct,
		AwayWinPct:          defaultAwayWinPct,
		HomeAdvantageFactor: 1.0,
		DrawFactor:          1.0,
		Unpredictability:    0.5,
		OverBaseline:        copyBaselines(defaultOverBaselines),
		BTSBaseline:         defaultBaseline,
		Reliability:         ReliabilityMedium,
	}

	if stats == nil {
		return ctx
	}
	ctx.Derived = true

	if stats.AvgGoals > 0 {
		ctx.AvgGoals = stats.AvgGoals
	}
	if stats.AvgHomeGoals > 0 {
		ctx.AvgHomeGoals = stats.AvgHomeGoals
	}
	if stats.AvgAwayGoals > 0 {
		ctx.AvgAwayGoals = stats.AvgAwayGoals
	}
	if stats.AvgHomeGoals > 0 && stats.AvgAwayGoals > 0 {
		ctx.HomeAdvantageFactor = stats.AvgHomeGoals / stats.AvgAwayGoals
	}

	if stats.HomeWinPct > 0 {
		ctx.HomeWinPct = stats.HomeWinPct
	}
	if stats.DrawPct > 0 {
		ctx.DrawPct = stats.DrawPct
		ctx.DrawFactor = stats.DrawPct / defaultDrawPct
	}
	if stats.AwayWinPct > 0 {
		ctx.AwayWinPct = stats.AwayWinPct
	}

	for line, pct := range stats.OverPct {
		if pct > 0 {
			ctx.OverBaseline[line] = pct / 100
		}
	}
	if stats.BTSPct > 0 {
		ctx.BTSBaseline = stats.BTSPct / 100
	}

	// Result spread vs the uniform 33.3% distribution: a league where the
	// three outcomes occur evenly is hard to call
	if stats.TotalMatches >= 10 {
		variance := (sq(ctx.HomeWinPct-33.3) + sq(ctx.DrawPct-33.3) + sq(ctx.AwayWinPct-33.3)) / 3
		ctx.Unpredictability = clamp(1-variance/1000, 0.2, 0.8)
	}

	switch {
	case stats.TotalMatches >= 20:
		ctx.Reliability = ReliabilityHigh
	case stats.TotalMatches >= 10:
		ctx.Reliability = ReliabilityMedium
	default:
		ctx.Reliability = ReliabilityLow
	}

	return ctx
}

// HomeAdvantage returns the per-league home advantage in [min, max].
// Home advantage is not universal; it is re-estimated from the league's
// home-win rate and its home/away goal split.
func (c LeagueContext) HomeAdvantage(cfg Params) float64 {
	adv := cfg.HomeAdvantageBase

	switch {
	case c.HomeWinPct > 50:
		adv = 0.40
	case c.HomeWinPct > 45:
		adv = 0.35
	case c.HomeWinPct > 40:
		adv = 0.30
	case c.HomeWinPct < 35:
		adv = 0.20
	}

	if c.HomeAdvantageFactor > 1.3 {
		adv *= 1.2
	} else if c.HomeAdvantageFactor < 1.1 {
		adv *= 0.8
	}

	return clamp(adv, cfg.HomeAdvantageMin, cfg.HomeAdvantageMax)
}

// Difficulty scores how hard the league is to predict, 0-100
func (c LeagueContext) Difficulty() float64 {
	difficulty := 50.0

	difficulty += (c.Unpredictability - 0.5) * 40

	// A near-even home/away goal split removes the easiest signal
	if c.HomeAdvantageFactor >= 0.95 && c.HomeAdvantageFactor <= 1.05 {
		difficulty += 15
	} else if c.HomeAdvantageFactor >= 0.9 && c.HomeAdvantageFactor <= 1.1 {
		difficulty += 10
	}

	switch c.Reliability {
	case ReliabilityLow:
		difficulty += 15
	case ReliabilityHigh:
		difficulty -= 10
	}

	return clamp(difficulty, 0, 100)
}

func copyBaselines(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func sq(x float64) float64 {
	return x * x
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
