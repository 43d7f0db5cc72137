package availability

import (
	"errors"
	"reflect"
	"testing"

	"slotify/models"
)

func TestValidDurations_WindowEndCutoff(t *testing.T) {
	// At 16:00 with the window ending 17:00 only 30 and 60 fit.
	windows := []models.AvailabilityWindow{window(540, 1020)}
	got, err := ValidDurations(windows, nil, "sp1", "2026-09-07", 960, []int{30, 60, 90, 120})
	if err != nil {
		t.Fatalf("ValidDurations failed: %v", err)
	}
	if !reflect.DeepEqual(got, []int{30, 60}) {
		t.Fatalf("expected [30 60], got %v", got)
	}
}

func TestValidDurations_BlockedByDownstreamBooking(t *testing.T) {
	// Booking [10:00,11:30): at 09:30 only a 30 minute appointment fits,
	// 60 would end at 10:30 inside the booking.
	windows := []models.AvailabilityWindow{window(540, 1020)}
	bookings := []models.Booking{confirmed("b1", 600, 90)}
	got, err := ValidDurations(windows, bookings, "sp1", "2026-09-07", 570, []int{30, 60})
	if err != nil {
		t.Fatalf("ValidDurations failed: %v", err)
	}
	if !reflect.DeepEqual(got, []int{30}) {
		t.Fatalf("expected [30], got %v", got)
	}
}

func TestValidDurations_OverlappingWindowsLongestWins(t *testing.T) {
	// Two open windows both cover 10:00; the short one listed first must not
	// cap the fit check at 12:00 when the long one runs to 17:00.
	windows := []models.AvailabilityWindow{window(540, 720), window(540, 1020)}
	got, err := ValidDurations(windows, nil, "sp1", "2026-09-07", 600, []int{30, 60, 90, 120})
	if err != nil {
		t.Fatalf("ValidDurations failed: %v", err)
	}
	if !reflect.DeepEqual(got, []int{30, 60, 90, 120}) {
		t.Fatalf("expected [30 60 90 120], got %v", got)
	}
}

func TestValidDurations_NoCoveringWindow(t *testing.T) {
	windows := []models.AvailabilityWindow{window(540, 1020)}

	// Slot outside working hours.
	if _, err := ValidDurations(windows, nil, "sp1", "2026-09-07", 1050, []int{30}); !errors.Is(err, ErrNoAvailability) {
		t.Fatalf("expected ErrNoAvailability, got %v", err)
	}

	// Window flagged unavailable must not count as cover.
	off := window(540, 1020)
	off.Available = false
	if _, err := ValidDurations([]models.AvailabilityWindow{off}, nil, "sp1", "2026-09-07", 600, []int{30}); !errors.Is(err, ErrNoAvailability) {
		t.Fatalf("expected ErrNoAvailability for unavailable window, got %v", err)
	}

	// Malformed window must not count as cover.
	bad := window(1020, 540)
	if _, err := ValidDurations([]models.AvailabilityWindow{bad}, nil, "sp1", "2026-09-07", 600, []int{30}); !errors.Is(err, ErrNoAvailability) {
		t.Fatalf("expected ErrNoAvailability for malformed window, got %v", err)
	}
}

func TestValidDurations_EmptyResultIsValid(t *testing.T) {
	// Back-to-back booking right after the slot: nothing fits, but that is a
	// normal empty result, not an error.
	windows := []models.AvailabilityWindow{window(540, 1020)}
	bookings := []models.Booking{confirmed("b1", 630, 60)}
	got, err := ValidDurations(windows, bookings, "sp1", "2026-09-07", 615, []int{30, 60})
	if err != nil {
		t.Fatalf("ValidDurations failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no valid durations, got %v", got)
	}
}

func TestValidDurations_Monotonicity(t *testing.T) {
	// With no intervening booking, any shorter candidate valid whenever a
	// longer one is.
	windows := []models.AvailabilityWindow{window(540, 1020)}
	for _, start := range []int{540, 720, 900, 960, 990} {
		got, err := ValidDurations(windows, nil, "sp1", "2026-09-07", start, []int{30, 60, 90, 120})
		if err != nil {
			t.Fatalf("start %d: %v", start, err)
		}
		longest := 0
		for _, d := range got {
			if d > longest {
				longest = d
			}
		}
		for _, d := range []int{30, 60, 90, 120} {
			if d <= longest && !containsInt(got, d) {
				t.Fatalf("start %d: duration %d missing although %d is valid: %v", start, d, longest, got)
			}
		}
	}
}

func TestValidDurations_PreservesCandidateOrder(t *testing.T) {
	windows := []models.AvailabilityWindow{window(540, 1020)}
	got, err := ValidDurations(windows, nil, "sp1", "2026-09-07", 540, []int{120, 30, 90, 60})
	if err != nil {
		t.Fatalf("ValidDurations failed: %v", err)
	}
	if !reflect.DeepEqual(got, []int{120, 30, 90, 60}) {
		t.Fatalf("candidate order not preserved: %v", got)
	}
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
