package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome represents a realized or predicted 1X2 result
type Outcome string

const (
	OutcomeHome Outcome = "1"
	OutcomeDraw Outcome = "X"
	OutcomeAway Outcome = "2"
)

// Score represents a final scoreline
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Total returns the total goals scored
func (s Score) Total() int {
	return s.Home + s.Away
}

// BothScored reports whether both teams found the net
func (s Score) BothScored() bool {
	return s.Home > 0 && s.Away > 0
}

// String returns the scoreline in "2-1" form
func (s Score) String() string {
	return fmt.Sprintf("%d-%d", s.Home, s.Away)
}

// ActualOutcome represents the realized result of an archived fixture.
// Score may be absent when only the 1X2 result was recorded.
type ActualOutcome struct {
	Outcome Outcome `json:"outcome"`
	Score   *Score  `json:"score,omitempty"`
}

// BacktestRecord represents one archived prediction with its frozen odds
// snapshot and, once settled, the realized outcome. Append-only: one record
// per archived match per day.
type BacktestRecord struct {
	MatchID     uuid.UUID      `json:"match_id"`
	League      string         `json:"league"`
	HomeTeam    string         `json:"home_team"`
	AwayTeam    string         `json:"away_team"`
	MatchDate   time.Time      `json:"match_date"`
	Prediction  Prediction     `json:"prediction"`
	Odds        MatchOdds      `json:"odds"`
	Actual      *ActualOutcome `json:"actual,omitempty"`
}

// Settled reports whether the record carries a realized outcome
func (r *BacktestRecord) Settled() bool {
	return r.Actual != nil && r.Actual.Outcome != ""
}
