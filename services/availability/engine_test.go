package availability

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"slotify/models"
)

// In-memory stores used for orchestration tests.
type memWindows struct {
	windows []models.AvailabilityWindow
	err     error
}

func (m *memWindows) Query(_ context.Context, specialistID, _, startDate, endDate string) ([]models.AvailabilityWindow, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.AvailabilityWindow
	for _, w := range m.windows {
		if w.SpecialistID == specialistID && w.Date >= startDate && w.Date <= endDate {
			out = append(out, w)
		}
	}
	return out, nil
}

type memBookings struct {
	bookings []models.Booking
	err      error
}

func (m *memBookings) QueryByDate(_ context.Context, date, specialistID, _ string) ([]models.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Booking
	for _, b := range m.bookings {
		if b.Date == date && (specialistID == "" || b.SpecialistID == specialistID) {
			out = append(out, b)
		}
	}
	return out, nil
}

func newEngine(windows []models.AvailabilityWindow, bookings []models.Booking) *Engine {
	return &Engine{
		Windows:  &memWindows{windows: windows},
		Bookings: &memBookings{bookings: bookings},
	}
}

func TestComputeAvailableSlots_Scenario(t *testing.T) {
	// Window 09:00-17:00, 30 minute slots, confirmed booking 13:00 for 60
	// minutes blocking [13:00,14:00).
	eng := newEngine(
		[]models.AvailabilityWindow{window(540, 1020)},
		[]models.Booking{confirmed("b1", 780, 60)},
	)

	slots, err := eng.ComputeAvailableSlots(context.Background(), "sp1", "massage", "2026-09-07")
	if err != nil {
		t.Fatalf("ComputeAvailableSlots failed: %v", err)
	}

	byStart := map[int]models.CandidateSlot{}
	for _, s := range slots {
		byStart[s.Start] = s
	}

	if s, ok := byStart[990]; !ok || !s.Available {
		t.Fatal("16:30 must be listed and available (990+30 <= 1020)")
	}
	if s := byStart[780]; s.Available {
		t.Fatal("13:00 must be booked")
	}
	if s := byStart[810]; s.Available {
		t.Fatal("13:30 must be booked")
	}
	if s := byStart[840]; !s.Available {
		t.Fatal("14:00 abuts the booking end and must be available")
	}
}

func TestComputeAvailableSlots_EmptyWindows(t *testing.T) {
	eng := newEngine(nil, nil)
	slots, err := eng.ComputeAvailableSlots(context.Background(), "sp1", "massage", "2026-09-07")
	if err != nil {
		t.Fatalf("expected nil error for empty windows, got %v", err)
	}
	if slots == nil || len(slots) != 0 {
		t.Fatalf("expected empty non-nil slot list, got %v", slots)
	}
}

func TestComputeAvailableSlots_SkipsUnavailableAndMalformed(t *testing.T) {
	off := window(540, 720)
	off.ID = "w-off"
	off.Available = false
	bad := window(900, 600)
	bad.ID = "w-bad"
	ok := window(780, 900)
	ok.ID = "w-ok"

	eng := newEngine([]models.AvailabilityWindow{off, bad, ok}, nil)
	slots, err := eng.ComputeAvailableSlots(context.Background(), "sp1", "massage", "2026-09-07")
	if err != nil {
		t.Fatalf("ComputeAvailableSlots failed: %v", err)
	}
	// Only the 13:00-15:00 window generates: 780, 810, 840, 870.
	if len(slots) != 4 || slots[0].Start != 780 || slots[3].Start != 870 {
		t.Fatalf("expected slots [780..870] from the valid window only, got %v", slots)
	}
}

func TestComputeAvailableSlots_SortedAcrossWindows(t *testing.T) {
	morning := window(540, 720)
	morning.ID = "w-am"
	afternoon := window(780, 1020)
	afternoon.ID = "w-pm"

	// Windows supplied out of order; output must still ascend.
	eng := newEngine([]models.AvailabilityWindow{afternoon, morning}, nil)
	slots, err := eng.ComputeAvailableSlots(context.Background(), "sp1", "massage", "2026-09-07")
	if err != nil {
		t.Fatalf("ComputeAvailableSlots failed: %v", err)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].Start <= slots[i-1].Start {
			t.Fatalf("slots not ascending at index %d", i)
		}
	}
}

func TestComputeAvailableSlots_Idempotent(t *testing.T) {
	eng := newEngine(
		[]models.AvailabilityWindow{window(540, 1020)},
		[]models.Booking{confirmed("b1", 780, 60), confirmed("b2", 900, 30)},
	)
	first, err := eng.ComputeAvailableSlots(context.Background(), "sp1", "massage", "2026-09-07")
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, err := eng.ComputeAvailableSlots(context.Background(), "sp1", "massage", "2026-09-07")
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("unchanged store data must yield identical output")
	}
}

func TestComputeAvailableSlots_StoreErrors(t *testing.T) {
	boom := errors.New("store down")

	eng := &Engine{Windows: &memWindows{err: boom}, Bookings: &memBookings{}}
	if _, err := eng.ComputeAvailableSlots(context.Background(), "sp1", "massage", "2026-09-07"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped window store error, got %v", err)
	}

	eng = &Engine{
		Windows:  &memWindows{windows: []models.AvailabilityWindow{window(540, 1020)}},
		Bookings: &memBookings{err: boom},
	}
	if _, err := eng.ComputeAvailableSlots(context.Background(), "sp1", "massage", "2026-09-07"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped booking store error, got %v", err)
	}
}

func TestValidDurationsAt_DefaultsCandidates(t *testing.T) {
	eng := newEngine([]models.AvailabilityWindow{window(540, 1020)}, nil)
	got, err := eng.ValidDurationsAt(context.Background(), "sp1", "massage", "2026-09-07", 960, nil)
	if err != nil {
		t.Fatalf("ValidDurationsAt failed: %v", err)
	}
	if !reflect.DeepEqual(got, []int{30, 60}) {
		t.Fatalf("expected [30 60] from default candidates, got %v", got)
	}
}
