package entities

import "time"

// Hospital represents a healthcare facility in the system
type Hospital struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Address      string    `json:"address" db:"address"`
	Location     Location  `json:"location" db:"-"`
	PhoneNumber  string    `json:"phone_number" db:"phone_number"`
	Email        string    `json:"email" db:"email"`
	Rating       float64   `json:"rating" db:"rating"`
	ReviewCount  int       `json:"review_count" db:"review_count"`
	HasEmergency bool      `json:"has_emergency" db:"has_emergency"`
	HasAmbulance bool      `json:"has_ambulance" db:"has_ambulance"`
	Specialties  []string  `json:"specialties" db:"-"`
	Facilities   []string  `json:"facilities" db:"-"`
	Open247      bool      `json:"open_247" db:"open_247"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Location represents geographical coordinates
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// ScoredHospital is a hospital annotated with distance and ranking data.
// It is produced per request by the ranking engine and never persisted.
type ScoredHospital struct {
	Hospital
	DistanceKm        float64 `json:"distance_km"`
	TravelTimeMinutes int     `json:"travel_time_minutes"`
	SpecialtyMatch    bool    `json:"specialty_match"`
	TotalScore        float64 `json:"total_score"`
}
