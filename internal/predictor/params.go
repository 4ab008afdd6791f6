package predictor

import (
	"fmt"

	"github.com/yourusername/goalcast/internal/config"
)

// Params holds the calibrated coefficients the engine computes with.
// Values mirror config.ModelConfig; they exist as a separate type so the
// engine has no dependency on how configuration is loaded.
type Params struct {
	Rho float64

	HomeAdvantageBase float64
	HomeAdvantageMin  float64
	HomeAdvantageMax  float64

	FormWeights []float64

	MaxGoals          int
	ScorelineMaxGoals int
	TopScorelines     int

	OverUnderModelWeight float64

	BTSPoissonWeight    float64
	BTSHistoricalWeight float64
	BTSLeagueWeight     float64

	ValueMinConfidence  float64
	ValueMaxOdds        float64
	ValueMinProbability float64
	KellyCapPct         float64
}

// DefaultParams returns the calibrated defaults
func DefaultParams() Params {
	return FromModelConfig(config.DefaultModelConfig())
}

// FromModelConfig converts loaded configuration into engine parameters
func FromModelConfig(cfg config.ModelConfig) Params {
	return Params{
		Rho:                  cfg.Rho,
		HomeAdvantageBase:    cfg.HomeAdvantageBase,
		HomeAdvantageMin:     cfg.HomeAdvantageMin,
		HomeAdvantageMax:     cfg.HomeAdvantageMax,
		FormWeights:          append([]float64(nil), cfg.FormWeights...),
		MaxGoals:             cfg.MaxGoals,
		ScorelineMaxGoals:    cfg.ScorelineMaxGoals,
		TopScorelines:        cfg.TopScorelines,
		OverUnderModelWeight: cfg.OverUnderModelWeight,
		BTSPoissonWeight:     cfg.BTSPoissonWeight,
		BTSHistoricalWeight:  cfg.BTSHistoricalWeight,
		BTSLeagueWeight:      cfg.BTSLeagueWeight,
		ValueMinConfidence:   cfg.ValueMinConfidence,
		ValueMaxOdds:         cfg.ValueMaxOdds,
		ValueMinProbability:  cfg.ValueMinProbability,
		KellyCapPct:          cfg.KellyCapPct,
	}
}

// Validate checks parameter sanity before the engine accepts them
func (p Params) Validate() error {
	if p.Rho >= 0 || p.Rho <= -1 {
		return fmt.Errorf("rho must be in (-1, 0), got %.3f", p.Rho)
	}
	if p.HomeAdvantageMin > p.HomeAdvantageMax {
		return fmt.Errorf("home advantage range inverted")
	}
	if len(p.FormWeights) == 0 {
		return fmt.Errorf("form weights are required")
	}
	if p.MaxGoals < 4 {
		return fmt.Errorf("max goals truncation too low: %d", p.MaxGoals)
	}
	if p.ScorelineMaxGoals > p.MaxGoals {
		return fmt.Errorf("scoreline truncation exceeds max goals")
	}
	if p.OverUnderModelWeight < 0 || p.OverUnderModelWeight > 1 {
		return fmt.Errorf("over/under model weight must be in [0, 1]")
	}
	return nil
}
