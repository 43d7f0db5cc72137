package models

import "time"

// Booking statuses. Only confirmed bookings block availability slots.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a confirmed (or cancelled) appointment.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	BusinessID      string    `bson:"business_id" json:"business_id"`
	BusinessType    string    `bson:"business_type" json:"business_type"`
	SpecialistID    string    `bson:"specialist_id" json:"specialist_id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	ServiceID       string    `bson:"service_id" json:"service_id"`
	Date            string    `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Start           int       `bson:"start" json:"start"` // minutes from midnight
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	Status          string    `bson:"status" json:"status"`
	TotalPrice      float64   `bson:"total_price" json:"total_price"`
	Invoice         Invoice   `bson:"invoice,omitempty" json:"invoice,omitzero"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// End returns the booking's exclusive end time in minutes from midnight.
func (b Booking) End() int {
	return b.Start + b.DurationMinutes
}

// Blocks reports whether the booking blocks availability for the given
// specialist and date. Cancelled bookings never block.
func (b Booking) Blocks(specialistID, date string) bool {
	return b.Status == BookingStatusConfirmed && b.SpecialistID == specialistID && b.Date == date
}

// CreateBookingRequest is the direct booking payload.
type CreateBookingRequest struct {
	SpecialistID    string `json:"specialistId" binding:"required"`
	ServiceID       string `json:"serviceId" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Start           int    `json:"start"`
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
	PaymentMethod   string `json:"paymentMethod"` // "card" or "venue"
}
