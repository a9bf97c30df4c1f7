package models

import (
	"time"

	"github.com/google/uuid"
)

type RecommendationType string

const (
	RecommendationTypeReduction    RecommendationType = "reduction"
	RecommendationTypePurchase     RecommendationType = "purchase"
	RecommendationTypeOptimization RecommendationType = "optimization"
	RecommendationTypeBehavioral   RecommendationType = "behavioral"
)

func (t RecommendationType) Valid() bool {
	switch t {
	case RecommendationTypeReduction, RecommendationTypePurchase,
		RecommendationTypeOptimization, RecommendationTypeBehavioral:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type Recommendation struct {
	ID                  uuid.UUID          `db:"id"`
	UserID              uuid.UUID          `db:"user_id"`
	Type                RecommendationType `db:"type"`
	Title               string             `db:"title"`
	Description         string             `db:"description"`
	Impact              float64            `db:"impact"` // tons CO2 per year
	Confidence          int                `db:"confidence"`
	Category            string             `db:"category"`
	RewardPotential     int                `db:"reward_potential"`
	ActionSteps         []string           `db:"action_steps"`
	EstimatedCost       float64            `db:"estimated_cost"`
	Timeframe           string             `db:"timeframe"`
	Priority            Priority           `db:"priority"`
	Implemented         bool               `db:"implemented"`
	Dismissed           bool               `db:"dismissed"`
	ImplementationNotes *string            `db:"implementation_notes"`
	CreatedAt           time.Time          `db:"created_at"`
	UpdatedAt           time.Time          `db:"updated_at"`
}

// RecommendationFilter predicates are optional and combined with AND.
type RecommendationFilter struct {
	Type        *RecommendationType
	Implemented *bool
	Dismissed   *bool
}

// RecommendationUpdate carries a lifecycle transition. Nil fields are left
// untouched.
type RecommendationUpdate struct {
	Implemented         *bool
	Dismissed           *bool
	ImplementationNotes *string
	UpdatedAt           time.Time
}
