package backtest

import (
	"github.com/yourusername/goalcast/internal/models"
)

// Default flat stake when the caller does not specify one
const defaultStakePerBet = 10.0

// OddsRange represents an inclusive decimal-odds interval
type OddsRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether odds fall inside the range
func (r OddsRange) Contains(odds float64) bool {
	return odds >= r.Min && odds <= r.Max
}

// Staking selects how the financial simulation sizes each bet
type Staking struct {
	StakePerBet float64 `json:"stake_per_bet"`
	UseKelly    bool    `json:"use_kelly"`
}

// Filter represents the analyzer's record selection. Every dimension is
// independently optional: a nil pointer (or empty slice) means "no
// constraint", never "exclude everything". Filters are value objects;
// adjust copies, not originals.
type Filter struct {
	MinConfidence *float64   `json:"min_confidence,omitempty"`
	MaxConfidence *float64   `json:"max_confidence,omitempty"`
	HomeOdds      *OddsRange `json:"home_odds,omitempty"`
	DrawOdds      *OddsRange `json:"draw_odds,omitempty"`
	AwayOdds      *OddsRange `json:"away_odds,omitempty"`
	MaxVariance   *float64   `json:"max_variance,omitempty"`
	MinEdgePct    *float64   `json:"min_edge_pct,omitempty"`
	ValueBetsOnly bool       `json:"value_bets_only"`
	Leagues       []string   `json:"leagues,omitempty"`
	Staking       Staking    `json:"staking"`
}

// Clone returns an independent copy of the filter
func (f Filter) Clone() Filter {
	out := f
	out.MinConfidence = copyFloat(f.MinConfidence)
	out.MaxConfidence = copyFloat(f.MaxConfidence)
	out.HomeOdds = copyRange(f.HomeOdds)
	out.DrawOdds = copyRange(f.DrawOdds)
	out.AwayOdds = copyRange(f.AwayOdds)
	out.MaxVariance = copyFloat(f.MaxVariance)
	out.MinEdgePct = copyFloat(f.MinEdgePct)
	out.Leagues = append([]string(nil), f.Leagues...)
	return out
}

// Matches applies every active dimension as a conjunction. Records without a
// realized outcome never match.
func (f Filter) Matches(r *models.BacktestRecord) bool {
	if !r.Settled() {
		return false
	}

	conf := r.Prediction.ConfidenceScore
	if f.MinConfidence != nil && conf < *f.MinConfidence {
		return false
	}
	if f.MaxConfidence != nil && conf > *f.MaxConfidence {
		return false
	}

	if f.HomeOdds != nil && !f.HomeOdds.Contains(r.Odds.HomeWin) {
		return false
	}
	if f.DrawOdds != nil && !f.DrawOdds.Contains(r.Odds.Draw) {
		return false
	}
	if f.AwayOdds != nil && !f.AwayOdds.Contains(r.Odds.AwayWin) {
		return false
	}

	if f.MaxVariance != nil && r.Prediction.Variance > *f.MaxVariance {
		return false
	}

	if f.ValueBetsOnly && len(r.Prediction.ValueBets) == 0 {
		return false
	}
	if f.MinEdgePct != nil {
		best := r.Prediction.BestValueBet()
		if best == nil || best.AdjustedEdgePct < *f.MinEdgePct {
			return false
		}
	}

	if len(f.Leagues) > 0 && !containsString(f.Leagues, r.League) {
		return false
	}

	return true
}

func (f Filter) apply(records []models.BacktestRecord) []models.BacktestRecord {
	filtered := make([]models.BacktestRecord, 0, len(records))
	for i := range records {
		if f.Matches(&records[i]) {
			filtered = append(filtered, records[i])
		}
	}
	return filtered
}

func (f Filter) stakePerBet() float64 {
	if f.Staking.StakePerBet > 0 {
		return f.Staking.StakePerBet
	}
	return defaultStakePerBet
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func copyRange(r *OddsRange) *OddsRange {
	if r == nil {
		return nil
	}
	out := *r
	return &out
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// Float returns a pointer to v, for concise filter construction
func Float(v float64) *float64 {
	return &v
}
