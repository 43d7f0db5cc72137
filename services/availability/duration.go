package availability

import "slotify/models"

// ValidDurations filters candidate appointment durations for a chosen slot
// start. A duration d survives when it fits in the covering window
// (slotStart+d <= window.End) and no confirmed booking for the specialist and
// date overlaps [slotStart, slotStart+d). Candidate order is preserved; an
// empty result is valid and means no duration fits this slot.
//
// When no available, well-formed window covers slotStart the function returns
// ErrNoAvailability: the slot is not bookable at all, and callers must not
// widen the duration list in response.
func ValidDurations(
	windows []models.AvailabilityWindow,
	bookings []models.Booking,
	specialistID, date string,
	slotStart int,
	candidates []int,
) ([]int, error) {
	// Overlapping open windows may each cover the slot; the one reaching
	// furthest caps the fit check so a shorter sibling cannot hide durations
	// a longer one allows.
	var window *models.AvailabilityWindow
	for i := range windows {
		w := windows[i]
		if w.SpecialistID != specialistID || w.Date != date || !w.Available || !w.Valid() {
			continue
		}
		if w.Covers(slotStart) && (window == nil || w.End > window.End) {
			window = &w
		}
	}
	if window == nil {
		return nil, ErrNoAvailability
	}

	valid := make([]int, 0, len(candidates))
	for _, d := range candidates {
		if d <= 0 || slotStart+d > window.End {
			continue
		}
		if blockedBetween(bookings, specialistID, date, slotStart, slotStart+d) {
			continue
		}
		valid = append(valid, d)
	}
	return valid, nil
}

func blockedBetween(bookings []models.Booking, specialistID, date string, start, end int) bool {
	for _, b := range bookings {
		if b.Blocks(specialistID, date) && Overlaps(start, end, b.Start, b.End()) {
			return true
		}
	}
	return false
}
