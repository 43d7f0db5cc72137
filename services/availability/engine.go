package availability

import (
	"context"
	"fmt"
	"sort"

	"slotify/models"
	"slotify/utils"

	"go.uber.org/zap"
)

// WorkingHoursStore supplies a specialist's availability windows for a date range.
type WorkingHoursStore interface {
	Query(ctx context.Context, specialistID, businessType, startDate, endDate string) ([]models.AvailabilityWindow, error)
}

// BookingStore supplies existing bookings for a date. Both confirmed and
// cancelled bookings are returned; the engine filters by status.
type BookingStore interface {
	QueryByDate(ctx context.Context, date, specialistID, businessType string) ([]models.Booking, error)
}

// Engine computes bookable slots from working-hours windows and existing
// bookings. All interval math is integer minutes from midnight; the engine is
// pure apart from the two injected read stores, holds no state, and is safe
// for concurrent use. Its output is advisory: the booking store re-validates
// conflicts atomically at creation time.
type Engine struct {
	Windows  WorkingHoursStore
	Bookings BookingStore

	// SlotSize and ListingBuffer default to the package constants when zero.
	SlotSize      int
	ListingBuffer int
}

func (e *Engine) slotSize() int {
	if e.SlotSize > 0 {
		return e.SlotSize
	}
	return SlotSizeMinutes
}

func (e *Engine) listingBuffer() int {
	if e.ListingBuffer > 0 {
		return e.ListingBuffer
	}
	return ListingBufferMinutes
}

// ComputeAvailableSlots returns every candidate slot for a specialist on a
// date, classified available or booked, sorted by start time. Unavailable
// windows contribute nothing; malformed windows (start >= end) are skipped
// with a warning since they reflect bad upstream data. Zero windows for the
// date is a normal empty result, not an error.
func (e *Engine) ComputeAvailableSlots(ctx context.Context, specialistID, businessType, date string) ([]models.CandidateSlot, error) {
	windows, err := e.Windows.Query(ctx, specialistID, businessType, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability windows: %w", err)
	}

	var starts []int
	for _, w := range windows {
		if w.Date != date || !w.Available {
			continue
		}
		if !w.Valid() {
			utils.GetLogger().Warn("skipping malformed availability window",
				zap.String("windowID", w.ID),
				zap.String("specialistID", w.SpecialistID),
				zap.Int("start", w.Start),
				zap.Int("end", w.End))
			continue
		}
		starts = append(starts, GenerateSlots(w, e.slotSize(), e.listingBuffer())...)
	}
	if len(starts) == 0 {
		return []models.CandidateSlot{}, nil
	}
	sort.Ints(starts)

	bookings, err := e.Bookings.QueryByDate(ctx, date, specialistID, businessType)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	return ResolveOverlaps(starts, specialistID, date, e.slotSize(), bookings), nil
}

// ValidDurationsAt fetches the stores and runs ValidDurations for a chosen
// slot start. Returns ErrNoAvailability when the slot is not bookable.
func (e *Engine) ValidDurationsAt(ctx context.Context, specialistID, businessType, date string, slotStart int, candidates []int) ([]int, error) {
	windows, err := e.Windows.Query(ctx, specialistID, businessType, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability windows: %w", err)
	}
	bookings, err := e.Bookings.QueryByDate(ctx, date, specialistID, businessType)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	if len(candidates) == 0 {
		candidates = DefaultDurations
	}
	return ValidDurations(windows, bookings, specialistID, date, slotStart, candidates)
}
