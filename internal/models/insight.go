package models

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// PredictionResult fields are pointers so that values missing from a
// generated payload stay absent instead of turning into zero values.
type PredictionResult struct {
	PredictedEmissions *float64 `json:"predictedEmissions,omitempty"`
	Trend              *Trend   `json:"trend,omitempty"`
	Factors            []string `json:"factors,omitempty"`
	Confidence         *float64 `json:"confidence,omitempty"`
	Timeframe          *string  `json:"timeframe,omitempty"`
}

type BehaviorAnalysis struct {
	Insights               []string `json:"insights,omitempty"`
	BehaviorScore          *float64 `json:"behavior_score,omitempty"`
	ImprovementSuggestions []string `json:"improvement_suggestions,omitempty"`
	HabitRecommendations   []string `json:"habit_recommendations,omitempty"`
}

// DailyActivity is one dated entry of a behavior log.
type DailyActivity struct {
	Date       string   `json:"date"`
	Activities []string `json:"activities"`
	Emissions  *float64 `json:"emissions,omitempty"`
}
