package dto

import "ecotrack/internal/models"

type PredictEmissionsRequest struct {
	MonthlyEmissions []float64 `json:"monthlyEmissions" validate:"max=120,dive,gte=0"`
	Activities       []string  `json:"activities" validate:"max=50,dive,max=200"`
	Seasonal         bool      `json:"seasonal"`
}

type PredictionResponse struct {
	Source     string                   `json:"source"`
	Prediction *models.PredictionResult `json:"prediction"`
}

type AnalyzeBehaviorRequest struct {
	DailyActivities []models.DailyActivity `json:"dailyActivities" validate:"max=366"`
	Patterns        []string               `json:"patterns" validate:"max=50,dive,max=200"`
	Goals           []string               `json:"goals" validate:"max=50,dive,max=200"`
}

type BehaviorResponse struct {
	Source   string                   `json:"source"`
	Analysis *models.BehaviorAnalysis `json:"analysis"`
}
