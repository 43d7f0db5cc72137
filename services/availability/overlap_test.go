package availability

import (
	"testing"

	"slotify/models"
)

func confirmed(id string, start, duration int) models.Booking {
	return models.Booking{
		ID:              id,
		SpecialistID:    "sp1",
		Date:            "2026-09-07",
		Start:           start,
		DurationMinutes: duration,
		Status:          models.BookingStatusConfirmed,
	}
}

func TestOverlaps_HalfOpen(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     int
		want                           bool
	}{
		{"identical", 600, 630, 600, 630, true},
		{"contained", 600, 660, 615, 630, true},
		{"partial", 600, 630, 615, 645, true},
		{"abut before", 570, 600, 600, 630, false},
		{"abut after", 630, 660, 600, 630, false},
		{"disjoint", 540, 570, 600, 630, false},
	}
	for _, tc := range cases {
		if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Errorf("%s: Overlaps(%d,%d,%d,%d) = %v, want %v",
				tc.name, tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
		}
	}
}

func TestResolveOverlaps_HalfOpenBoundary(t *testing.T) {
	// Booking [10:00,10:30) must mark the 10:00 slot booked and leave 10:30 free.
	bookings := []models.Booking{confirmed("b1", 600, 30)}
	slots := ResolveOverlaps([]int{570, 600, 630}, "sp1", "2026-09-07", 30, bookings)

	if !slots[0].Available {
		t.Fatal("09:30 slot should be available")
	}
	if slots[1].Available {
		t.Fatal("10:00 slot should be booked")
	}
	if slots[1].BlockingBookingID != "b1" {
		t.Fatalf("expected blocking booking b1, got %q", slots[1].BlockingBookingID)
	}
	if !slots[2].Available {
		t.Fatal("10:30 slot abuts the booking and should be available")
	}
}

func TestResolveOverlaps_SpanningBookingMarksEveryGranule(t *testing.T) {
	// A 90 minute booking at 10:00 covers the 10:00, 10:30 and 11:00 granules.
	bookings := []models.Booking{confirmed("b1", 600, 90)}
	slots := ResolveOverlaps([]int{570, 600, 630, 660, 690}, "sp1", "2026-09-07", 30, bookings)

	wantAvailable := []bool{true, false, false, false, true}
	for i, s := range slots {
		if s.Available != wantAvailable[i] {
			t.Errorf("slot %d (start %d): available = %v, want %v", i, s.Start, s.Available, wantAvailable[i])
		}
	}
	for _, s := range slots[1:4] {
		if s.BlockingBookingID != "b1" {
			t.Errorf("slot %d should reference blocking booking b1, got %q", s.Start, s.BlockingBookingID)
		}
	}
}

func TestResolveOverlaps_IgnoresCancelledAndForeign(t *testing.T) {
	cancelled := confirmed("b1", 600, 60)
	cancelled.Status = models.BookingStatusCancelled
	otherSpecialist := confirmed("b2", 600, 60)
	otherSpecialist.SpecialistID = "sp2"
	otherDate := confirmed("b3", 600, 60)
	otherDate.Date = "2026-09-08"

	slots := ResolveOverlaps([]int{600}, "sp1", "2026-09-07", 30,
		[]models.Booking{cancelled, otherSpecialist, otherDate})
	if !slots[0].Available {
		t.Fatal("slot should be available: no confirmed booking for this specialist/date")
	}
}

func TestResolveOverlaps_NoOverlapInvariant(t *testing.T) {
	// Any slot reported available must not intersect any confirmed booking.
	bookings := []models.Booking{
		confirmed("b1", 600, 90),
		confirmed("b2", 780, 60),
		confirmed("b3", 960, 30),
	}
	starts := GenerateSlots(window(540, 1020), 30, 30)
	slots := ResolveOverlaps(starts, "sp1", "2026-09-07", 30, bookings)

	for _, s := range slots {
		if !s.Available {
			continue
		}
		for _, b := range bookings {
			if Overlaps(s.Start, s.Start+30, b.Start, b.End()) {
				t.Fatalf("available slot %d intersects booking %s [%d,%d)", s.Start, b.ID, b.Start, b.End())
			}
		}
	}
}

func TestResolveOverlaps_EmptySlots(t *testing.T) {
	slots := ResolveOverlaps(nil, "sp1", "2026-09-07", 30, []models.Booking{confirmed("b1", 600, 30)})
	if len(slots) != 0 {
		t.Fatalf("expected empty result, got %v", slots)
	}
}
