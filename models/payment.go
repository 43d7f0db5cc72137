package models

import "time"

// PaymentRequest describes a charge to collect for a booking.
type PaymentRequest struct {
	UserID   string  `json:"user_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"` // "card" or "venue"
}

// Invoice records the outcome of a payment attempt.
type Invoice struct {
	InvoiceID       string    `bson:"invoice_id" json:"invoice_id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	Amount          float64   `bson:"amount" json:"amount"`
	Currency        string    `bson:"currency" json:"currency"`
	Method          string    `bson:"method" json:"method"`
	PaymentIntentID string    `bson:"payment_intent_id,omitempty" json:"payment_intent_id,omitempty"`
	ClientSecret    string    `bson:"-" json:"client_secret,omitempty"` // returned once, never stored
	Status          string    `bson:"status" json:"status"`             // "pending" or "paid"
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
