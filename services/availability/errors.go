package availability

import "errors"

var (
	// ErrNoAvailability means no open window covers the requested slot. Callers
	// must treat the slot as not bookable, never fall back to an unrestricted
	// duration list.
	ErrNoAvailability = errors.New("no availability window covers the requested slot")

	// ErrInvalidDuration means the requested duration does not fit at the
	// chosen slot: it crosses the window end or a confirmed booking. The
	// slot itself may still be bookable with a shorter duration.
	ErrInvalidDuration = errors.New("requested duration does not fit at the chosen slot")

	// ErrSlotConflict is returned by the booking store when a conflicting
	// confirmed booking was created between slot computation and submission.
	// Callers must re-fetch slots and prompt the user to reselect.
	ErrSlotConflict = errors.New("slot already taken by a conflicting booking")
)
