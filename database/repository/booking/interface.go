package bookingRepo

import (
	"context"

	"slotify/models"
)

// BookingRepository manages appointment bookings. QueryByDate satisfies the
// availability engine's BookingStore contract; Create is the authoritative
// conflict check, since engine output is only advisory.
type BookingRepository interface {
	QueryByDate(ctx context.Context, date, specialistID, businessType string) ([]models.Booking, error)
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListBySpecialist(ctx context.Context, specialistID, startDate, endDate string) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	Cancel(ctx context.Context, bookingID string) error
	EnsureIndexes() error
}
