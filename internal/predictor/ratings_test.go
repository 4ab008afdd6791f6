package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yourusername/goalcast/internal/models"
)

func TestCalculateRatingsFromVenueSplits(t *testing.T) {
	match := &models.Match{
		HomeStats: &models.TeamStats{
			// 10 home matches, 20 scored, 10 conceded
			Home: models.VenueRecord{Wins: 6, Draws: 2, Losses: 2, GoalsFor: 20, GoalsAgainst: 10},
		},
		AwayStats: &models.TeamStats{
			// 10 away matches, 13 scored, 13 conceded
			Away: models.VenueRecord{Wins: 4, Draws: 2, Losses: 4, GoalsFor: 13, GoalsAgainst: 13},
		},
	}

	notes := &degradations{}
	r := CalculateRatings(match, 2.6, notes)

	assert.InDelta(t, 2.0/1.3, r.HomeAttack, 1e-9)
	assert.InDelta(t, 1.0/1.3, r.HomeDefense, 1e-9)
	assert.InDelta(t, 1.3/1.3, r.AwayAttack, 1e-9)
	assert.InDelta(t, 1.3/1.3, r.AwayDefense, 1e-9)
	assert.Empty(t, notes.list, "full venue samples need no defaults")
}

func TestCalculateRatingsOverallFallback(t *testing.T) {
	match := &models.Match{
		HomeStats: &models.TeamStats{AvgGoalsScored: 1.8, AvgGoalsConceded: 1.0},
		AwayStats: &models.TeamStats{AvgGoalsScored: 1.2, AvgGoalsConceded: 1.5},
	}

	notes := &degradations{}
	r := CalculateRatings(match, 2.6, notes)

	assert.InDelta(t, 1.8/1.3, r.HomeAttack, 1e-9)
	assert.InDelta(t, 1.0/1.3, r.HomeDefense, 1e-9)
	assert.InDelta(t, 1.2/1.3, r.AwayAttack, 1e-9)
	assert.InDelta(t, 1.5/1.3, r.AwayDefense, 1e-9)
	assert.Len(t, notes.list, 2, "both venue fallbacks must be recorded")
}

func TestCalculateRatingsMissingStats(t *testing.T) {
	notes := &degradations{}
	r := CalculateRatings(&models.Match{}, 2.6, notes)

	assert.Equal(t, Ratings{HomeAttack: 1, HomeDefense: 1, AwayAttack: 1, AwayDefense: 1}, r)
	assert.Len(t, notes.list, 2)
}

func TestAttackRatingMonotonicInGoals(t *testing.T) {
	previous := 0.0
	for goals := 0; goals <= 40; goals += 5 {
		match := &models.Match{
			HomeStats: &models.TeamStats{
				Home: models.VenueRecord{Wins: 5, Draws: 3, Losses: 2, GoalsFor: goals, GoalsAgainst: 12},
			},
		}
		r := CalculateRatings(match, 2.6, &degradations{})
		assert.GreaterOrEqual(t, r.HomeAttack, previous,
			"more goals over the same sample must never lower the attack rating")
		previous = r.HomeAttack
	}
}

func TestCalculateRatingsClamped(t *testing.T) {
	match := &models.Match{
		HomeStats: &models.TeamStats{
			// Absurd sample: 5 matches, 30 scored, 0 conceded
			Home: models.VenueRecord{Wins: 5, GoalsFor: 30, GoalsAgainst: 0},
		},
		AwayStats: &models.TeamStats{
			Away: models.VenueRecord{Losses: 5, GoalsFor: 0, GoalsAgainst: 30},
		},
	}

	notes := &degradations{}
	r := CalculateRatings(match, 2.6, notes)

	assert.Equal(t, ratingCeil, r.HomeAttack, "attack rating must cap at 3.0")
	assert.Equal(t, ratingFloor, r.HomeDefense, "defense rating must floor at 0.3")
	assert.Equal(t, ratingFloor, r.AwayAttack)
	assert.Equal(t, ratingCeil, r.AwayDefense)
}
