package schedule

import (
	"context"

	availabilityRepo "slotify/database/repository/availability"
	"slotify/models"
)

// ScheduleService manages specialists' availability windows.
type ScheduleService interface {
	SetWindows(ctx context.Context, specialistID, date string, windows []models.AvailabilityWindow) ([]models.AvailabilityWindow, error)
	UpsertWindow(ctx context.Context, specialistID string, window models.AvailabilityWindow) (*models.AvailabilityWindow, error)
	GetWindows(ctx context.Context, specialistID, startDate, endDate string) ([]models.AvailabilityWindow, error)
	ApplyWeeklyTemplate(ctx context.Context, specialistID string, tpl models.WeeklyTemplate) (int, error)
	DeleteWindow(ctx context.Context, windowID string) error
}

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	Repo availabilityRepo.WorkingHoursRepository
}
