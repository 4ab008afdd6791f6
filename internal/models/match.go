// Package models defines the domain types shared by the prediction and
// backtesting engines.
package models

import (
	"time"

	"github.com/google/uuid"
)

// FormOutcome represents one recent result from a team's perspective
type FormOutcome string

const (
	FormWin  FormOutcome = "W"
	FormDraw FormOutcome = "D"
	FormLoss FormOutcome = "L"
)

// VenueRecord represents a team's aggregate record at one venue split
type VenueRecord struct {
	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Losses       int `json:"losses"`
	GoalsFor     int `json:"goals_for"`
	GoalsAgainst int `json:"goals_against"`
}

// MatchesPlayed returns the sample size behind the record
func (v VenueRecord) MatchesPlayed() int {
	return v.Wins + v.Draws + v.Losses
}

// TeamStats represents a team's season statistics, overall and venue-split
type TeamStats struct {
	AvgGoalsScored   float64     `json:"avg_goals_scored"`
	AvgGoalsConceded float64     `json:"avg_goals_conceded"`
	BTSPercentage    float64     `json:"bts_percentage"`    // 0-100
	Over25Percentage float64     `json:"over25_percentage"` // 0-100
	Home             VenueRecord `json:"home"`
	Away             VenueRecord `json:"away"`
}

// TeamStanding represents a team's league table position
type TeamStanding struct {
	Position       int `json:"position"`
	Played         int `json:"played"`
	Points         int `json:"points"`
	GoalDifference int `json:"goal_difference"`
}

// LeagueStats represents a competition's aggregate statistics for the season
type LeagueStats struct {
	AvgGoals     float64 `json:"avg_goals"`
	AvgHomeGoals float64 `json:"avg_home_goals"`
	AvgAwayGoals float64 `json:"avg_away_goals"`

	HomeWinPct float64 `json:"home_win_pct"` // 0-100
	DrawPct    float64 `json:"draw_pct"`
	AwayWinPct float64 `json:"away_win_pct"`

	OverPct map[string]float64 `json:"over_pct,omitempty"` // keyed by line, 0-100
	BTSPct  float64            `json:"bts_pct"`

	TotalMatches int `json:"total_matches"`
}

// Match represents one fixture with whatever statistics were available at
// prediction time. Every pointer field may be nil; the engine substitutes
// neutral defaults and records the substitution.
type Match struct {
	ID        uuid.UUID `json:"id"`
	League    string    `json:"league"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	KickoffAt time.Time `json:"kickoff_at"`

	HomeStats *TeamStats `json:"home_stats,omitempty"`
	AwayStats *TeamStats `json:"away_stats,omitempty"`

	HomeStanding *TeamStanding `json:"home_standing,omitempty"`
	AwayStanding *TeamStanding `json:"away_standing,omitempty"`

	HomeForm []FormOutcome `json:"home_form,omitempty"` // most recent first
	AwayForm []FormOutcome `json:"away_form,omitempty"`

	LeagueStats *LeagueStats `json:"league_stats,omitempty"`

	Odds *MatchOdds `json:"odds,omitempty"`
}

// HasStandings reports whether both sides carry a league table position
func (m *Match) HasStandings() bool {
	return m.HomeStanding != nil && m.AwayStanding != nil
}

// HasVenueStats reports whether both sides carry a venue-split sample
func (m *Match) HasVenueStats() bool {
	return m.HomeStats != nil && m.HomeStats.Home.MatchesPlayed() > 0 &&
		m.AwayStats != nil && m.AwayStats.Away.MatchesPlayed() > 0
}

// HasFullForm reports whether both sides carry five recent results
func (m *Match) HasFullForm() bool {
	return len(m.HomeForm) >= 5 && len(m.AwayForm) >= 5
}
