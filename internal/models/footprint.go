package models

import (
	"time"

	"github.com/google/uuid"
)

// Footprint is a snapshot of a user's yearly emissions in tons of CO2.
type Footprint struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	TotalEmissions float64   `db:"total_emissions"`
	Transportation float64   `db:"transportation"`
	Energy         float64   `db:"energy"`
	Food           float64   `db:"food"`
	Waste          float64   `db:"waste"`
	CreatedAt      time.Time `db:"created_at"`
}

func (f *Footprint) ComponentSum() float64 {
	return f.Transportation + f.Energy + f.Food + f.Waste
}
