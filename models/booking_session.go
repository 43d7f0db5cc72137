package models

// BookingSession is the redis-cached state of an in-flight booking wizard.
// Sessions expire on a TTL; confirming or cancelling removes them.
type BookingSession struct {
	SessionID    string          `json:"session_id"`
	UserID       string          `json:"user_id"`
	BusinessType string          `json:"business_type"`
	SpecialistID string          `json:"specialist_id"`
	ServiceID    string          `json:"service_id"`
	Date         string          `json:"date"`
	Slots        []CandidateSlot `json:"slots,omitempty"` // last slot listing shown to the user
	SelectedSlot int             `json:"selected_slot"`   // minutes from midnight, -1 until chosen
	Durations    []int           `json:"durations,omitempty"`
}

// InitiateSessionRequest starts a booking wizard for a specialist and date.
type InitiateSessionRequest struct {
	SpecialistID string `json:"specialistId" binding:"required"`
	ServiceID    string `json:"serviceId" binding:"required"`
	Date         string `json:"date" binding:"required"`
}

// UpdateSessionRequest records the user's slot selection.
type UpdateSessionRequest struct {
	SelectedSlot int `json:"selectedSlot"`
}

// ConfirmSessionRequest finalizes a session into a booking.
type ConfirmSessionRequest struct {
	SessionID       string `json:"sessionId" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
	PaymentMethod   string `json:"paymentMethod"`
}
