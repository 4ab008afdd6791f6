package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yourusername/goalcast/internal/models"
)

func TestFormImpact(t *testing.T) {
	weights := []float64{5, 4, 3, 2, 1}

	tests := []struct {
		name     string
		form     []models.FormOutcome
		expected float64
	}{
		{
			name:     "perfect run",
			form:     []models.FormOutcome{"W", "W", "W", "W", "W"},
			expected: 1.0,
		},
		{
			name:     "winless run",
			form:     []models.FormOutcome{"L", "L", "L", "L", "L"},
			expected: -1.0,
		},
		{
			name:     "all draws",
			form:     []models.FormOutcome{"D", "D", "D", "D", "D"},
			expected: 0.0,
		},
		{
			name: "recent win outweighs older loss",
			// (5 - 4 + 0 + 0 + 0) / 15
			form:     []models.FormOutcome{"W", "L", "D", "D", "D"},
			expected: 1.0 / 15.0,
		},
		{
			name:     "three results is enough",
			form:     []models.FormOutcome{"W", "W", "W"},
			expected: 1.0,
		},
		{
			name:     "two results carry no signal",
			form:     []models.FormOutcome{"W", "W"},
			expected: 0.0,
		},
		{
			name:     "no results",
			form:     nil,
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, FormImpact(tt.form, weights), 1e-9)
		})
	}
}

func TestFormImpactIgnoresResultsBeyondWeights(t *testing.T) {
	weights := []float64{5, 4, 3, 2, 1}

	// The sixth result must not change the score
	five := FormImpact([]models.FormOutcome{"W", "W", "L", "D", "W"}, weights)
	six := FormImpact([]models.FormOutcome{"W", "W", "L", "D", "W", "L"}, weights)

	assert.Equal(t, five, six)
}
