package predictor

import (
	"github.com/yourusername/goalcast/internal/models"
)

// Rating bounds: small samples must not imply a side three times stronger
// than the league, or a tenth as strong
const (
	ratingFloor = 0.3
	ratingCeil  = 3.0
)

// Ratings represents attack/defense strength ratios relative to the league
// average. 1.0 is league average; above 1.0 is stronger attack or leakier
// defense respectively.
type Ratings struct {
	HomeAttack  float64
	HomeDefense float64
	AwayAttack  float64
	AwayDefense float64
}

// CalculateRatings derives the four strength ratios from venue-split team
// statistics, preferring venue-specific samples and falling back to overall
// averages. Missing statistics leave the neutral 1.0 rating in place and are
// recorded on the collector.
func CalculateRatings(match *models.Match, leagueAvg float64, notes *degradations) Ratings {
	r := Ratings{HomeAttack: 1.0, HomeDefense: 1.0, AwayAttack: 1.0, AwayDefense: 1.0}
	halfAvg := leagueAvg / 2

	switch {
	case match.HomeStats != nil && match.HomeStats.Home.MatchesPlayed() > 0:
		venue := match.HomeStats.Home
		played := float64(venue.MatchesPlayed())
		r.HomeAttack = (float64(venue.GoalsFor) / played) / halfAvg
		r.HomeDefense = (float64(venue.GoalsAgainst) / played) / halfAvg
	case match.HomeStats != nil:
		if match.HomeStats.AvgGoalsScored > 0 {
			r.HomeAttack = match.HomeStats.AvgGoalsScored / halfAvg
		}
		if match.HomeStats.AvgGoalsConceded > 0 {
			r.HomeDefense = match.HomeStats.AvgGoalsConceded / halfAvg
		}
		notes.add("ratings", "no home-venue sample for home team, used overall averages", "")
	default:
		notes.add("ratings", "no statistics for home team", "rating 1.0")
	}

	switch {
	case match.AwayStats != nil && match.AwayStats.Away.MatchesPlayed() > 0:
		venue := match.AwayStats.Away
		played := float64(venue.MatchesPlayed())
		r.AwayAttack = (float64(venue.GoalsFor) / played) / halfAvg
		r.AwayDefense = (float64(venue.GoalsAgainst) / played) / halfAvg
	case match.AwayStats != nil:
		if match.AwayStats.AvgGoalsScored > 0 {
			r.AwayAttack = match.AwayStats.AvgGoalsScored / halfAvg
		}
		if match.AwayStats.AvgGoalsConceded > 0 {
			r.AwayDefense = match.AwayStats.AvgGoalsConceded / halfAvg
		}
		notes.add("ratings", "no away-venue sample for away team, used overall averages", "")
	default:
		notes.add("ratings", "no statistics for away team", "rating 1.0")
	}

	r.HomeAttack = clamp(r.HomeAttack, ratingFloor, ratingCeil)
	r.HomeDefense = clamp(r.HomeDefense, ratingFloor, ratingCeil)
	r.AwayAttack = clamp(r.AwayAttack, ratingFloor, ratingCeil)
	r.AwayDefense = clamp(r.AwayDefense, ratingFloor, ratingCeil)

	return r
}
