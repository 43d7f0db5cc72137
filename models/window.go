package models

// AvailabilityWindow represents one specialist's open working period on one calendar date.
// Times are minutes from midnight (e.g., 540 for 9:00 AM); dates are naive "YYYY-MM-DD"
// strings compared lexically. A window with Available=false overrides a prior window and
// contributes no slots.
type AvailabilityWindow struct {
	ID           string `bson:"id" json:"id"`
	SpecialistID string `bson:"specialist_id" json:"specialistId"`
	BusinessType string `bson:"business_type" json:"businessType"` // e.g., "massage", "dental", "beauty"
	Date         string `bson:"date" json:"date"`                  // "YYYY-MM-DD"
	Start        int    `bson:"start" json:"start"`                // minutes from midnight
	End          int    `bson:"end" json:"end"`                    // minutes from midnight, Start < End
	Available    bool   `bson:"available" json:"available"`
}

// Valid reports whether the window's time bounds are well formed.
// Malformed windows reflect bad upstream data and are skipped, never fatal.
func (w AvailabilityWindow) Valid() bool {
	return w.Start >= 0 && w.End <= 24*60 && w.Start < w.End
}

// Covers reports whether the given slot start falls inside the window.
func (w AvailabilityWindow) Covers(slotStart int) bool {
	return w.Start <= slotStart && slotStart < w.End
}

// SetWindowsRequest is the payload for replacing a specialist's windows on a date.
type SetWindowsRequest struct {
	Windows []AvailabilityWindow `json:"windows" binding:"required"`
}
