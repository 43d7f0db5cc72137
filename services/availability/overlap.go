package availability

import "slotify/models"

// Overlaps reports whether the half-open minute intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one instant. Abutting intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// ResolveOverlaps classifies each candidate slot start as available or booked
// by checking interval overlap against existing bookings. The slot interval is
// [t, t+slotSize): the minimal bookable granularity, independent of any
// booking's actual duration. A booking spanning several granules marks every
// covered granule individually; slots are never merged.
//
// Only confirmed bookings for the same specialist and date block a slot. The
// output preserves the input slot order and carries the blocking booking's ID.
func ResolveOverlaps(slots []int, specialistID, date string, slotSize int, bookings []models.Booking) []models.CandidateSlot {
	out := make([]models.CandidateSlot, 0, len(slots))
	for _, t := range slots {
		slot := models.CandidateSlot{
			SpecialistID: specialistID,
			Date:         date,
			Start:        t,
			Available:    true,
		}
		for _, b := range bookings {
			if !b.Blocks(specialistID, date) {
				continue
			}
			if Overlaps(t, t+slotSize, b.Start, b.End()) {
				slot.Available = false
				slot.BlockingBookingID = b.ID
				break
			}
		}
		out = append(out, slot)
	}
	return out
}
