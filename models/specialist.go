package models

import "time"

// Specialist is a bookable staff member belonging to one business.
type Specialist struct {
	ID           string    `bson:"id" json:"id"`
	BusinessID   string    `bson:"business_id" json:"business_id"`
	BusinessType string    `bson:"business_type" json:"business_type"`
	Name         string    `bson:"name" json:"name"`
	Title        string    `bson:"title,omitempty" json:"title,omitempty"` // e.g., "Senior Therapist"
	ServiceIDs   []string  `bson:"service_ids" json:"service_ids"`
	Active       bool      `bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// Service is an offering a specialist can be booked for.
type Service struct {
	ID              string  `bson:"id" json:"id"`
	BusinessID      string  `bson:"business_id" json:"business_id"`
	Name            string  `bson:"name" json:"name"`
	DurationMinutes int     `bson:"duration_minutes" json:"duration_minutes"`
	Price           float64 `bson:"price" json:"price"`
	Currency        string  `bson:"currency" json:"currency"`
	Active          bool    `bson:"active" json:"active"`
}
