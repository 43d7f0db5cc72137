package schedule

import (
	"context"
	"fmt"
	"time"

	"slotify/models"
	"slotify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WindowError is returned when a submitted window is rejected.
type WindowError struct {
	Code    string
	Message string
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newWindowError(msg string) error {
	return &WindowError{Code: "invalidWindow", Message: msg}
}

// SetWindows replaces a specialist's windows for one date. Unlike windows read
// back from the store (where malformed entries are skipped), admin submissions
// are rejected outright so bad data never lands.
func (s *DefaultScheduleService) SetWindows(ctx context.Context, specialistID, date string, windows []models.AvailabilityWindow) ([]models.AvailabilityWindow, error) {
	if !utils.ValidDate(date) {
		return nil, newWindowError(fmt.Sprintf("invalid date %q", date))
	}

	prepared := make([]models.AvailabilityWindow, 0, len(windows))
	for _, w := range windows {
		if !w.Valid() {
			return nil, newWindowError(fmt.Sprintf("window start %d must precede end %d", w.Start, w.End))
		}
		w.SpecialistID = specialistID
		w.Date = date
		if w.ID == "" {
			w.ID = uuid.New().String()
		}
		prepared = append(prepared, w)
	}

	if err := s.Repo.ReplaceForDate(ctx, specialistID, date, prepared); err != nil {
		return nil, fmt.Errorf("failed to store windows: %w", err)
	}
	return prepared, nil
}

// UpsertWindow writes a single window without touching the rest of the date,
// for one-off edits such as flipping Available off to block time out.
func (s *DefaultScheduleService) UpsertWindow(ctx context.Context, specialistID string, window models.AvailabilityWindow) (*models.AvailabilityWindow, error) {
	if !utils.ValidDate(window.Date) {
		return nil, newWindowError(fmt.Sprintf("invalid date %q", window.Date))
	}
	if !window.Valid() {
		return nil, newWindowError(fmt.Sprintf("window start %d must precede end %d", window.Start, window.End))
	}
	window.SpecialistID = specialistID
	if window.ID == "" {
		window.ID = uuid.New().String()
	}
	if err := s.Repo.Upsert(ctx, window); err != nil {
		return nil, fmt.Errorf("failed to store window: %w", err)
	}
	return &window, nil
}

// GetWindows returns a specialist's windows over a date range.
func (s *DefaultScheduleService) GetWindows(ctx context.Context, specialistID, startDate, endDate string) ([]models.AvailabilityWindow, error) {
	if !utils.ValidDate(startDate) || !utils.ValidDate(endDate) {
		return nil, newWindowError("invalid date range")
	}
	return s.Repo.Query(ctx, specialistID, "", startDate, endDate)
}

// ApplyWeeklyTemplate replicates the template's base windows onto every active
// weekday over the requested number of weeks, starting from the anchor date's
// week. Returns the number of windows created.
func (s *DefaultScheduleService) ApplyWeeklyTemplate(ctx context.Context, specialistID string, tpl models.WeeklyTemplate) (int, error) {
	anchor, err := time.Parse("2006-01-02", tpl.AnchorDate)
	if err != nil {
		return 0, newWindowError(fmt.Sprintf("invalid anchor date %q", tpl.AnchorDate))
	}
	if tpl.Weeks < 1 {
		return 0, newWindowError("weeks must be at least 1")
	}
	for _, w := range tpl.BaseWindows {
		if !w.Valid() {
			return 0, newWindowError(fmt.Sprintf("base window start %d must precede end %d", w.Start, w.End))
		}
	}

	active := make(map[time.Weekday]bool, len(tpl.ActiveDays))
	for _, d := range tpl.ActiveDays {
		active[d] = true
	}

	// Walk day by day from the anchor's week start.
	weekStart := anchor.AddDate(0, 0, -int(anchor.Weekday()))
	created := 0
	for day := 0; day < tpl.Weeks*7; day++ {
		d := weekStart.AddDate(0, 0, day)
		if d.Before(anchor) || !active[d.Weekday()] {
			continue
		}
		dateStr := d.Format("2006-01-02")
		dayWindows := ExpandBaseWindows(tpl.BaseWindows, specialistID, dateStr)
		if err := s.Repo.ReplaceForDate(ctx, specialistID, dateStr, dayWindows); err != nil {
			return created, fmt.Errorf("failed to store windows for %s: %w", dateStr, err)
		}
		created += len(dayWindows)
	}

	utils.GetLogger().Info("weekly template applied",
		zap.String("specialistID", specialistID),
		zap.String("anchor", tpl.AnchorDate),
		zap.Int("windows", created))
	return created, nil
}

// ExpandBaseWindows clones the template windows onto a concrete date with
// fresh IDs.
func ExpandBaseWindows(base []models.AvailabilityWindow, specialistID, date string) []models.AvailabilityWindow {
	out := make([]models.AvailabilityWindow, 0, len(base))
	for _, w := range base {
		w.ID = uuid.New().String()
		w.SpecialistID = specialistID
		w.Date = date
		out = append(out, w)
	}
	return out
}

// DeleteWindow removes one window by ID.
func (s *DefaultScheduleService) DeleteWindow(ctx context.Context, windowID string) error {
	return s.Repo.Delete(ctx, windowID)
}
