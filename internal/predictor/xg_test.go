package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedGoalsBalancedFixture(t *testing.T) {
	// League-average sides, 2.6 goals per match, standard home advantage
	homeXG := ExpectedGoals(1.0, 1.0, 2.6, 0.30, 0, true)
	awayXG := ExpectedGoals(1.0, 1.0, 2.6, 0, 0, false)

	assert.InDelta(t, 1.69, homeXG, 1e-9)
	assert.InDelta(t, 1.30, awayXG, 1e-9)
}

func TestExpectedGoalsHomeAdvantageOnlyAtHome(t *testing.T) {
	home := ExpectedGoals(1.2, 1.1, 2.6, 0.30, 0, true)
	away := ExpectedGoals(1.2, 1.1, 2.6, 0.30, 0, false)

	assert.InDelta(t, 1.30, home/away, 1e-9, "home advantage must scale only the home side")
}

func TestExpectedGoalsFormSwing(t *testing.T) {
	base := ExpectedGoals(1.0, 1.0, 2.6, 0, 0, false)
	peak := ExpectedGoals(1.0, 1.0, 2.6, 0, 1.0, false)
	slump := ExpectedGoals(1.0, 1.0, 2.6, 0, -1.0, false)

	assert.InDelta(t, base*1.20, peak, 1e-9, "top form adds at most 20%")
	assert.InDelta(t, base*0.80, slump, 1e-9, "worst form removes at most 20%")
}

func TestExpectedGoalsClamped(t *testing.T) {
	assert.Equal(t, xgCeil, ExpectedGoals(3.0, 3.0, 4.0, 0.45, 1.0, true))
	assert.Equal(t, xgFloor, ExpectedGoals(0.3, 0.3, 1.0, 0, -1.0, false))
}
