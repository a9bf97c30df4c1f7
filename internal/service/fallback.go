package service

import (
	"math"

	"ecotrack/internal/models"

	"github.com/google/uuid"
)

const (
	fallbackImpact        = 3.2
	fallbackConfidence    = 90
	predictionFloor       = 20.0
	predictionEmptyMean   = 25.5
	predictionDampening   = 0.95
	fallbackBehaviorScore = 78.0
)

// FallbackRecommendations returns the fixed recommendation used whenever
// the generative path fails. Nothing from the failed attempt is reused.
func FallbackRecommendations(userID uuid.UUID) []*models.Recommendation {
	return []*models.Recommendation{{
		UserID:          userID,
		Type:            models.RecommendationTypeReduction,
		Title:           "Switch to energy-efficient appliances and lighting",
		Description:     "Replacing incandescent bulbs with LEDs and choosing efficient appliances when they need replacing is one of the fastest ways to cut household electricity emissions.",
		Impact:          fallbackImpact,
		Confidence:      fallbackConfidence,
		Category:        "Energy Efficiency",
		RewardPotential: EstimateReward(fallbackImpact),
		ActionSteps: []string{
			"Replace the most used light bulbs with LED bulbs",
			"Unplug devices on standby or use smart power strips",
			"Pick ENERGY STAR rated models when replacing appliances",
			"Lower the thermostat by 1-2 degrees in winter",
		},
		EstimatedCost: 200,
		Timeframe:     "1-3 months",
		Priority:      models.PriorityHigh,
	}}
}

// FallbackPrediction dampens the historical mean by 5% with a floor of 20.
// An empty history uses a mean of 25.5.
func FallbackPrediction(monthly []float64) *models.PredictionResult {
	mean := predictionEmptyMean
	if len(monthly) > 0 {
		var sum float64
		for _, v := range monthly {
			sum += v
		}
		mean = sum / float64(len(monthly))
	}

	predicted := math.Max(mean*predictionDampening, predictionFloor)
	trend := models.TrendStable
	confidence := 85.0
	timeframe := "3 months"

	return &models.PredictionResult{
		PredictedEmissions: &predicted,
		Trend:              &trend,
		Factors: []string{
			"Historical monthly average",
			"Gradual efficiency improvements",
			"Consistent lifestyle patterns",
		},
		Confidence: &confidence,
		Timeframe:  &timeframe,
	}
}

func FallbackBehavior() *models.BehaviorAnalysis {
	score := fallbackBehaviorScore
	return &models.BehaviorAnalysis{
		Insights: []string{
			"Transportation is the largest contributor to your daily emissions",
			"Your energy use is fairly consistent from day to day",
			"Weekends show more varied activity than weekdays",
		},
		BehaviorScore: &score,
		ImprovementSuggestions: []string{
			"Combine errands into a single trip",
			"Use public transport or cycle for short distances",
			"Turn off lights and electronics when leaving a room",
		},
		HabitRecommendations: []string{
			"Plan meals for the week to reduce food waste",
			"Carry a reusable bottle and shopping bag",
			"Track your daily emissions to stay aware of trends",
		},
	}
}
