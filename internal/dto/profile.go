package dto

type UpdateProfileRequest struct {
	Location    string   `json:"location" validate:"max=200"`
	Lifestyle   []string `json:"lifestyle" validate:"max=20,dive,max=100"`
	Preferences []string `json:"preferences" validate:"max=20,dive,max=100"`
	Budget      *float64 `json:"budget" validate:"omitempty,gte=0"`
}

type ProfileResponse struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Location    string   `json:"location"`
	Lifestyle   []string `json:"lifestyle"`
	Preferences []string `json:"preferences"`
	Budget      *float64 `json:"budget,omitempty"`
}

type RecordFootprintRequest struct {
	TotalEmissions *float64 `json:"totalEmissions" validate:"omitempty,gte=0"`
	Transportation float64  `json:"transportation" validate:"gte=0"`
	Energy         float64  `json:"energy" validate:"gte=0"`
	Food           float64  `json:"food" validate:"gte=0"`
	Waste          float64  `json:"waste" validate:"gte=0"`
}

type FootprintResponse struct {
	ID             string  `json:"id"`
	TotalEmissions float64 `json:"totalEmissions"`
	Transportation float64 `json:"transportation"`
	Energy         float64 `json:"energy"`
	Food           float64 `json:"food"`
	Waste          float64 `json:"waste"`
	CreatedAt      string  `json:"createdAt"`
}
