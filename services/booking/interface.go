package booking

import (
	"context"

	bookingRepo "slotify/database/repository/booking"
	specialistRepo "slotify/database/repository/specialist"
	"slotify/models"
	"slotify/services/availability"
	"slotify/services/notification"

	"github.com/go-redis/redis/v8"
)

// BookingService manages the booking lifecycle: direct creation, the wizard
// session flow, and cancellation.
type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req models.CreateBookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID string) error
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	ListSpecialistBookings(ctx context.Context, specialistID, startDate, endDate string) ([]models.Booking, error)

	InitiateSession(ctx context.Context, userID string, req models.InitiateSessionRequest) (*models.BookingSession, error)
	UpdateSession(ctx context.Context, sessionID string, req models.UpdateSessionRequest) (*models.BookingSession, error)
	ConfirmSession(ctx context.Context, userID string, req models.ConfirmSessionRequest) (*models.Booking, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo            bookingRepo.BookingRepository
	SpecialistRepo  specialistRepo.SpecialistRepository
	Engine          *availability.Engine
	PaymentHandler  PaymentHandler
	NotificationSvc notification.NotificationService
	SessionCache    *redis.Client
	Reminders       ReminderScheduler
	SessionTTL      int // minutes
}
