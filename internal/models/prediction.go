package models

import (
	"github.com/google/uuid"
)

// Confidence labels, ordered from least to most certain
const (
	ConfidenceVeryLow  = "Very Low"
	ConfidenceLow      = "Low"
	ConfidenceMedium   = "Medium"
	ConfidenceHigh     = "High"
	ConfidenceVeryHigh = "Very High"
)

// OverUnderProb represents the paired probabilities for one total-goals line
type OverUnderProb struct {
	Over  float64 `json:"over"`
	Under float64 `json:"under"`
}

// ExactScore represents one scoreline and its model probability
type ExactScore struct {
	Score       string  `json:"score"` // "2-1"
	Probability float64 `json:"probability"`
}

// ValueBet represents a positive-expected-value wager surfaced by the model.
// Created only by the value bet detector and never mutated afterwards.
type ValueBet struct {
	Market             string  `json:"market"`
	ModelProbability   float64 `json:"model_probability"`
	BookmakerOdds      float64 `json:"bookmaker_odds"`
	ImpliedProbability float64 `json:"implied_probability"`
	EdgePct            float64 `json:"edge_pct"`          // (model - implied) * 100
	AdjustedEdgePct    float64 `json:"adjusted_edge_pct"` // raw edge * confidence/100, * 100
	ExpectedValue      float64 `json:"expected_value"`    // (model * odds) - 1
	KellyPct           float64 `json:"kelly_pct"`         // clamped to [0, 25]
	RiskTier           string  `json:"risk_tier"`
	ConfidenceTier     string  `json:"confidence_tier"`
}

// Degradation records a missing input that was replaced by a documented
// neutral default. Partial data is the expected steady state, so these are
// observations, not errors.
type Degradation struct {
	Component string `json:"component"`
	Reason    string `json:"reason"`
	Default   string `json:"default_applied"`
}

// Prediction represents the complete model output for one fixture.
// Immutable once produced; identical inputs yield identical predictions.
type Prediction struct {
	MatchID  uuid.UUID `json:"match_id"`
	League   string    `json:"league"`
	HomeTeam string    `json:"home_team"`
	AwayTeam string    `json:"away_team"`

	HomeWinProb float64 `json:"home_win_prob"`
	DrawProb    float64 `json:"draw_prob"`
	AwayWinProb float64 `json:"away_win_prob"`

	HomeXG  float64 `json:"home_xg"`
	AwayXG  float64 `json:"away_xg"`
	TotalXG float64 `json:"total_xg"`

	HomeAttackRating  float64 `json:"home_attack_rating"`
	HomeDefenseRating float64 `json:"home_defense_rating"`
	AwayAttackRating  float64 `json:"away_attack_rating"`
	AwayDefenseRating float64 `json:"away_defense_rating"`

	OverUnder map[string]OverUnderProb `json:"over_under"` // keyed by line: "0.5".."3.5"

	BTSYesProb float64 `json:"bts_yes_prob"`
	BTSNoProb  float64 `json:"bts_no_prob"`

	ExactScores []ExactScore `json:"exact_scores"`
	ValueBets   []ValueBet   `json:"value_bets"`

	Confidence      string  `json:"confidence"`
	ConfidenceScore float64 `json:"confidence_score"` // 0-100
	Variance        float64 `json:"variance"`         // 0 certain .. 1 maximally uncertain
	RecommendedBet  string  `json:"recommended_bet"`

	HomeAdvantageImpact float64 `json:"home_advantage_impact"`
	FormImpactHome      float64 `json:"form_impact_home"`
	FormImpactAway      float64 `json:"form_impact_away"`
	LeagueDifficulty    float64 `json:"league_difficulty"`

	Degradations []Degradation `json:"degradations,omitempty"`
}

// TopOutcome returns the most likely 1X2 outcome and its probability
func (p *Prediction) TopOutcome() (Outcome, float64) {
	outcome := OutcomeHome
	prob := p.HomeWinProb
	if p.DrawProb > prob {
		outcome, prob = OutcomeDraw, p.DrawProb
	}
	if p.AwayWinProb > prob {
		outcome, prob = OutcomeAway, p.AwayWinProb
	}
	return outcome, prob
}

// SecondOutcome returns the second most likely 1X2 outcome
func (p *Prediction) SecondOutcome() Outcome {
	type ranked struct {
		outcome Outcome
		prob    float64
	}
	probs := []ranked{
		{OutcomeHome, p.HomeWinProb},
		{OutcomeDraw, p.DrawProb},
		{OutcomeAway, p.AwayWinProb},
	}
	best, second := 0, 1
	if probs[second].prob > probs[best].prob {
		best, second = second, best
	}
	for i := 2; i < len(probs); i++ {
		if probs[i].prob > probs[best].prob {
			second = best
			best = i
		} else if probs[i].prob > probs[second].prob {
			second = i
		}
	}
	return probs[second].outcome
}

// OutcomeProb returns the probability the model assigned to an outcome
func (p *Prediction) OutcomeProb(o Outcome) float64 {
	switch o {
	case OutcomeHome:
		return p.HomeWinProb
	case OutcomeDraw:
		return p.DrawProb
	case OutcomeAway:
		return p.AwayWinProb
	}
	return 0
}

// BestValueBet returns the highest adjusted-edge value bet, or nil
func (p *Prediction) BestValueBet() *ValueBet {
	if len(p.ValueBets) == 0 {
		return nil
	}
	return &p.ValueBets[0]
}
