package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"slotify/models"
)

// memWindowRepo is an in-memory WorkingHoursRepository for service tests.
type memWindowRepo struct {
	byDate map[string][]models.AvailabilityWindow
}

func newMemWindowRepo() *memWindowRepo {
	return &memWindowRepo{byDate: make(map[string][]models.AvailabilityWindow)}
}

func (m *memWindowRepo) Query(_ context.Context, specialistID, _, startDate, endDate string) ([]models.AvailabilityWindow, error) {
	var out []models.AvailabilityWindow
	for date, ws := range m.byDate {
		if date < startDate || date > endDate {
			continue
		}
		for _, w := range ws {
			if w.SpecialistID == specialistID {
				out = append(out, w)
			}
		}
	}
	return out, nil
}

func (m *memWindowRepo) Upsert(_ context.Context, w models.AvailabilityWindow) error {
	for i, existing := range m.byDate[w.Date] {
		if existing.ID == w.ID {
			m.byDate[w.Date][i] = w
			return nil
		}
	}
	m.byDate[w.Date] = append(m.byDate[w.Date], w)
	return nil
}

func (m *memWindowRepo) ReplaceForDate(_ context.Context, specialistID, date string, windows []models.AvailabilityWindow) error {
	var kept []models.AvailabilityWindow
	for _, w := range m.byDate[date] {
		if w.SpecialistID != specialistID {
			kept = append(kept, w)
		}
	}
	m.byDate[date] = append(kept, windows...)
	return nil
}

func (m *memWindowRepo) Delete(_ context.Context, windowID string) error {
	for date, ws := range m.byDate {
		for i, w := range ws {
			if w.ID == windowID {
				m.byDate[date] = append(ws[:i], ws[i+1:]...)
				return nil
			}
		}
	}
	return errors.New("not found")
}

func (m *memWindowRepo) EnsureIndexes() error { return nil }

func TestSetWindows_AssignsIdentityAndStores(t *testing.T) {
	repo := newMemWindowRepo()
	svc := &DefaultScheduleService{Repo: repo}

	windows, err := svc.SetWindows(context.Background(), "sp1", "2026-09-07", []models.AvailabilityWindow{
		{Start: 540, End: 1020, Available: true},
	})
	if err != nil {
		t.Fatalf("SetWindows failed: %v", err)
	}
	if len(windows) != 1 || windows[0].ID == "" {
		t.Fatalf("expected one window with generated ID, got %+v", windows)
	}
	if windows[0].SpecialistID != "sp1" || windows[0].Date != "2026-09-07" {
		t.Fatalf("window identity not set: %+v", windows[0])
	}
	if len(repo.byDate["2026-09-07"]) != 1 {
		t.Fatal("window not stored")
	}
}

func TestSetWindows_RejectsMalformed(t *testing.T) {
	svc := &DefaultScheduleService{Repo: newMemWindowRepo()}

	_, err := svc.SetWindows(context.Background(), "sp1", "2026-09-07", []models.AvailabilityWindow{
		{Start: 1020, End: 540, Available: true},
	})
	var werr *WindowError
	if !errors.As(err, &werr) {
		t.Fatalf("expected WindowError, got %v", err)
	}

	if _, err := svc.SetWindows(context.Background(), "sp1", "not-a-date", nil); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestUpsertWindow(t *testing.T) {
	repo := newMemWindowRepo()
	svc := &DefaultScheduleService{Repo: repo}

	stored, err := svc.UpsertWindow(context.Background(), "sp1", models.AvailabilityWindow{
		Date: "2026-09-07", Start: 540, End: 1020, Available: true,
	})
	if err != nil {
		t.Fatalf("UpsertWindow failed: %v", err)
	}
	if stored.ID == "" || stored.SpecialistID != "sp1" {
		t.Fatalf("window identity not set: %+v", stored)
	}

	// Re-upserting the same ID edits in place rather than duplicating, so a
	// single window can be flipped unavailable to block time out.
	stored.Available = false
	if _, err := svc.UpsertWindow(context.Background(), "sp1", *stored); err != nil {
		t.Fatalf("UpsertWindow update failed: %v", err)
	}
	day := repo.byDate["2026-09-07"]
	if len(day) != 1 {
		t.Fatalf("expected one stored window, got %d", len(day))
	}
	if day[0].Available {
		t.Fatal("availability flag not updated")
	}
}

func TestUpsertWindow_RejectsMalformed(t *testing.T) {
	svc := &DefaultScheduleService{Repo: newMemWindowRepo()}

	var werr *WindowError
	_, err := svc.UpsertWindow(context.Background(), "sp1", models.AvailabilityWindow{
		Date: "2026-09-07", Start: 1020, End: 540, Available: true,
	})
	if !errors.As(err, &werr) {
		t.Fatalf("expected WindowError for inverted bounds, got %v", err)
	}
	_, err = svc.UpsertWindow(context.Background(), "sp1", models.AvailabilityWindow{
		Date: "07/09/2026", Start: 540, End: 600, Available: true,
	})
	if !errors.As(err, &werr) {
		t.Fatalf("expected WindowError for malformed date, got %v", err)
	}
}

func TestSetWindows_ReplacesExisting(t *testing.T) {
	repo := newMemWindowRepo()
	svc := &DefaultScheduleService{Repo: repo}
	ctx := context.Background()

	if _, err := svc.SetWindows(ctx, "sp1", "2026-09-07", []models.AvailabilityWindow{
		{Start: 540, End: 720, Available: true},
		{Start: 780, End: 1020, Available: true},
	}); err != nil {
		t.Fatalf("first SetWindows failed: %v", err)
	}
	if _, err := svc.SetWindows(ctx, "sp1", "2026-09-07", []models.AvailabilityWindow{
		{Start: 600, End: 900, Available: true},
	}); err != nil {
		t.Fatalf("second SetWindows failed: %v", err)
	}
	if got := len(repo.byDate["2026-09-07"]); got != 1 {
		t.Fatalf("expected replacement to leave 1 window, got %d", got)
	}
}

func TestApplyWeeklyTemplate(t *testing.T) {
	repo := newMemWindowRepo()
	svc := &DefaultScheduleService{Repo: repo}

	// 2026-09-07 is a Monday. Replicate Mon/Wed/Fri for two weeks.
	created, err := svc.ApplyWeeklyTemplate(context.Background(), "sp1", models.WeeklyTemplate{
		AnchorDate: "2026-09-07",
		ActiveDays: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		BaseWindows: []models.AvailabilityWindow{
			{Start: 540, End: 720, Available: true},
			{Start: 780, End: 1020, Available: true},
		},
		Weeks: 2,
	})
	if err != nil {
		t.Fatalf("ApplyWeeklyTemplate failed: %v", err)
	}
	// 3 active days x 2 weeks x 2 base windows.
	if created != 12 {
		t.Fatalf("expected 12 windows created, got %d", created)
	}

	for _, date := range []string{"2026-09-07", "2026-09-09", "2026-09-11", "2026-09-14", "2026-09-16", "2026-09-18"} {
		if len(repo.byDate[date]) != 2 {
			t.Fatalf("expected 2 windows on %s, got %d", date, len(repo.byDate[date]))
		}
	}
	if len(repo.byDate["2026-09-08"]) != 0 {
		t.Fatal("Tuesday should have no windows")
	}

	// IDs must be fresh per replicated window.
	seen := map[string]bool{}
	for _, ws := range repo.byDate {
		for _, w := range ws {
			if seen[w.ID] {
				t.Fatalf("duplicate window ID %s across dates", w.ID)
			}
			seen[w.ID] = true
		}
	}
}

func TestApplyWeeklyTemplate_RejectsBadInput(t *testing.T) {
	svc := &DefaultScheduleService{Repo: newMemWindowRepo()}
	ctx := context.Background()

	if _, err := svc.ApplyWeeklyTemplate(ctx, "sp1", models.WeeklyTemplate{AnchorDate: "nope", Weeks: 1}); err == nil {
		t.Fatal("expected error for bad anchor date")
	}
	if _, err := svc.ApplyWeeklyTemplate(ctx, "sp1", models.WeeklyTemplate{
		AnchorDate:  "2026-09-07",
		ActiveDays:  []time.Weekday{time.Monday},
		BaseWindows: []models.AvailabilityWindow{{Start: 700, End: 600}},
		Weeks:       1,
	}); err == nil {
		t.Fatal("expected error for malformed base window")
	}
}
