package availability

import (
	"testing"

	"slotify/models"
)

func window(start, end int) models.AvailabilityWindow {
	return models.AvailabilityWindow{
		ID:           "w1",
		SpecialistID: "sp1",
		BusinessType: "massage",
		Date:         "2026-09-07",
		Start:        start,
		End:          end,
		Available:    true,
	}
}

func TestGenerateSlots_FullDay(t *testing.T) {
	// 09:00-17:00, 30 min granules, 30 min listing buffer.
	slots := GenerateSlots(window(540, 1020), 30, 30)
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(slots))
	}
	if slots[0] != 540 {
		t.Fatalf("expected first slot 09:00 (540), got %d", slots[0])
	}
	// 16:30 must still be offered: 990+30 <= 1020.
	if slots[len(slots)-1] != 990 {
		t.Fatalf("expected last slot 16:30 (990), got %d", slots[len(slots)-1])
	}
}

func TestGenerateSlots_Ascending(t *testing.T) {
	slots := GenerateSlots(window(540, 1020), 30, 30)
	for i := 1; i < len(slots); i++ {
		if slots[i] <= slots[i-1] {
			t.Fatalf("slots not strictly ascending at index %d: %v", i, slots)
		}
	}
}

func TestGenerateSlots_BufferExceedsWindow(t *testing.T) {
	// A 15 minute window cannot host a slot with a 30 minute buffer.
	if slots := GenerateSlots(window(540, 555), 30, 30); len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
}

func TestGenerateSlots_MalformedWindow(t *testing.T) {
	if slots := GenerateSlots(window(600, 540), 30, 30); slots != nil {
		t.Fatalf("expected nil for start >= end, got %v", slots)
	}
	if slots := GenerateSlots(window(540, 540), 30, 30); slots != nil {
		t.Fatalf("expected nil for empty window, got %v", slots)
	}
}

func TestGenerateSlots_ZeroSlotSize(t *testing.T) {
	if slots := GenerateSlots(window(540, 1020), 0, 30); slots != nil {
		t.Fatalf("expected nil for zero slot size, got %v", slots)
	}
}

func TestGenerateSlots_BufferSmallerThanGranule(t *testing.T) {
	// With no end buffer each granule start up to but excluding End appears.
	slots := GenerateSlots(window(540, 600), 30, 0)
	if len(slots) != 3 || slots[2] != 600 {
		// 540, 570, 600: 600+0 <= 600 holds.
		t.Fatalf("expected [540 570 600], got %v", slots)
	}
}
