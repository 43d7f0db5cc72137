package models

// CandidateSlot is an ephemeral slot classification produced by the availability
// engine. It is never persisted; every request recomputes the full list.
type CandidateSlot struct {
	SpecialistID      string `json:"specialistId"`
	Date              string `json:"date"`
	Start             int    `json:"start"` // minutes from midnight
	Available         bool   `json:"available"`
	BlockingBookingID string `json:"blockingBookingId,omitempty"`
}

// SlotListResponse is the availability listing returned to booking UIs. The
// listing is advisory: booking creation independently re-checks for conflicts.
type SlotListResponse struct {
	SpecialistID string          `json:"specialistId"`
	Date         string          `json:"date"`
	SlotSize     int             `json:"slotSize"` // granule size in minutes
	Slots        []CandidateSlot `json:"slots"`
}

// DurationListResponse reports which appointment durations fit at a chosen slot.
type DurationListResponse struct {
	SpecialistID string `json:"specialistId"`
	Date         string `json:"date"`
	Start        int    `json:"start"`
	Durations    []int  `json:"durations"`
}
