package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `db:"id"`
	Username    string    `db:"username"`
	Email       string    `db:"email"`
	Password    string    `db:"password"`
	Location    string    `db:"location"`
	Lifestyle   []string  `db:"lifestyle"`
	Preferences []string  `db:"preferences"`
	Budget      *float64  `db:"budget"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// UserProfile is assembled per request from stored data and request
// overrides. It is never persisted.
type UserProfile struct {
	CarbonFootprint *float64
	Location        string
	Lifestyle       []string
	Preferences     []string
	Budget          *float64
}
