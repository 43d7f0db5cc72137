package availability

import "slotify/models"

// Scheduling granularity defaults. The listing buffer is deliberately the slot
// size rather than a requested service duration: slot listing answers "is this
// a legal slot to click", duration validation answers "does this duration fit
// here". Using the full duration as the generation buffer would hide valid
// shorter-duration slots near closing time.
const (
	SlotSizeMinutes      = 30
	ListingBufferMinutes = 30
)

// DefaultDurations are the candidate appointment lengths offered to customers.
var DefaultDurations = []int{30, 60, 90, 120}

// GenerateSlots turns a working-hours window into candidate slot start times,
// in minutes from midnight, ascending. A start t is produced when
// window.Start <= t and t+endBuffer <= window.End, stepping by slotSize.
// The caller filters out unavailable windows; malformed windows yield nothing.
func GenerateSlots(window models.AvailabilityWindow, slotSize, endBuffer int) []int {
	if slotSize <= 0 || !window.Valid() {
		return nil
	}

	var slots []int
	for t := window.Start; t+endBuffer <= window.End; t += slotSize {
		slots = append(slots, t)
	}
	return slots
}
