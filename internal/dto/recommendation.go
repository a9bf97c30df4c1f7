package dto

type GenerateRecommendationsRequest struct {
	CarbonFootprint *float64 `json:"carbonFootprint" validate:"omitempty,gte=0"`
	Location        string   `json:"location" validate:"max=200"`
	Lifestyle       []string `json:"lifestyle" validate:"max=20,dive,max=100"`
	Preferences     []string `json:"preferences" validate:"max=20,dive,max=100"`
	Budget          *float64 `json:"budget" validate:"omitempty,gte=0"`
}

type ImplementRecommendationRequest struct {
	Notes *string `json:"notes" validate:"omitempty,max=2000"`
}

type RecommendationResponse struct {
	ID                  string   `json:"id"`
	Type                string   `json:"type"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Impact              float64  `json:"impact"`
	Confidence          int      `json:"confidence"`
	Category            string   `json:"category"`
	RewardPotential     int      `json:"rewardPotential"`
	ActionSteps         []string `json:"actionSteps"`
	EstimatedCost       float64  `json:"estimatedCost"`
	Timeframe           string   `json:"timeframe"`
	Priority            string   `json:"priority"`
	Implemented         bool     `json:"implemented"`
	Dismissed           bool     `json:"dismissed"`
	ImplementationNotes *string  `json:"implementationNotes,omitempty"`
	CreatedAt           string   `json:"createdAt"`
	UpdatedAt           string   `json:"updatedAt"`
}

type GenerateRecommendationsResponse struct {
	Source          string                   `json:"source"`
	Recommendations []RecommendationResponse `json:"recommendations"`
}
