package availabilityRepo

import (
	"context"

	"slotify/models"
)

// WorkingHoursRepository manages specialist availability windows. Its Query
// method satisfies the availability engine's WorkingHoursStore contract.
type WorkingHoursRepository interface {
	Query(ctx context.Context, specialistID, businessType, startDate, endDate string) ([]models.AvailabilityWindow, error)
	Upsert(ctx context.Context, window models.AvailabilityWindow) error
	ReplaceForDate(ctx context.Context, specialistID, date string, windows []models.AvailabilityWindow) error
	Delete(ctx context.Context, windowID string) error
	EnsureIndexes() error
}
