package service

import (
	"testing"

	"ecotrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackRecommendations(t *testing.T) {
	userID := uuid.New()

	recs := FallbackRecommendations(userID)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, userID, rec.UserID)
	assert.Equal(t, 3.2, rec.Impact)
	assert.Equal(t, 90, rec.Confidence)
	assert.Equal(t, 32, rec.RewardPotential)
	assert.Equal(t, "Energy Efficiency", rec.Category)
	assert.Equal(t, 200.0, rec.EstimatedCost)
	assert.Equal(t, models.PriorityHigh, rec.Priority)
	assert.Len(t, rec.ActionSteps, 4)
}

func TestFallbackRecommendations_FreshValues(t *testing.T) {
	first := FallbackRecommendations(uuid.New())
	first[0].ActionSteps[0] = "changed"

	second := FallbackRecommendations(uuid.New())
	assert.NotEqual(t, "changed", second[0].ActionSteps[0])
}

func TestFallbackPrediction(t *testing.T) {
	tests := []struct {
		name    string
		monthly []float64
		want    float64
	}{
		{
			name:    "yearly history",
			monthly: []float64{45, 42, 48, 41, 39, 37, 35, 33, 31, 29, 27, 25},
			want:    34.2,
		},
		{name: "floor applies", monthly: []float64{10, 12}, want: 20},
		{name: "empty history", monthly: nil, want: 24.225},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FallbackPrediction(tt.monthly)
			require.NotNil(t, result.PredictedEmissions)
			assert.InDelta(t, tt.want, *result.PredictedEmissions, 1e-9)
			assert.Equal(t, models.TrendStable, *result.Trend)
			assert.Equal(t, 85.0, *result.Confidence)
			assert.Equal(t, "3 months", *result.Timeframe)
			assert.NotEmpty(t, result.Factors)
		})
	}
}

func TestFallbackBehavior(t *testing.T) {
	result := FallbackBehavior()

	require.NotNil(t, result.BehaviorScore)
	assert.Equal(t, 78.0, *result.BehaviorScore)
	assert.NotEmpty(t, result.Insights)
	assert.NotEmpty(t, result.ImprovementSuggestions)
	assert.NotEmpty(t, result.HabitRecommendations)
}
