package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slotify/models"
	"slotify/services/availability"
	"slotify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderScheduler enqueues an appointment reminder to fire before start time.
type ReminderScheduler interface {
	ScheduleReminder(booking models.Booking) error
}

// CreateBooking validates and persists a direct booking. The requested slot
// and duration are re-validated against current windows and bookings; the
// repository's transactional insert then performs the authoritative conflict
// re-check, so a race between validation and insert surfaces as
// availability.ErrSlotConflict and the caller must re-fetch slots.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, req models.CreateBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if !utils.ValidDate(req.Date) {
		return nil, fmt.Errorf("invalid booking date %q", req.Date)
	}

	specialist, err := s.SpecialistRepo.GetByID(ctx, req.SpecialistID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve specialist: %w", err)
	}
	service, err := s.SpecialistRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service: %w", err)
	}

	durations, err := s.Engine.ValidDurationsAt(ctx, specialist.ID, specialist.BusinessType, req.Date, req.Start, availability.DefaultDurations)
	if err != nil {
		if errors.Is(err, availability.ErrNoAvailability) {
			return nil, err
		}
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if !containsInt(durations, req.DurationMinutes) {
		return nil, fmt.Errorf("duration %d does not fit at %s: %w",
			req.DurationMinutes, utils.FormatClock(req.Start), availability.ErrInvalidDuration)
	}

	booking := &models.Booking{
		ID:              uuid.New().String(),
		BusinessID:      specialist.BusinessID,
		BusinessType:    specialist.BusinessType,
		SpecialistID:    specialist.ID,
		UserID:          userID,
		ServiceID:       service.ID,
		Date:            req.Date,
		Start:           req.Start,
		DurationMinutes: req.DurationMinutes,
		Status:          models.BookingStatusConfirmed,
		TotalPrice:      service.Price,
		CreatedAt:       time.Now(),
	}

	payReq := models.PaymentRequest{
		UserID:   userID,
		Amount:   service.Price,
		Currency: service.Currency,
		Method:   paymentMethodOrDefault(req.PaymentMethod),
	}
	invoice, err := s.PaymentHandler.ProcessPayment(ctx, payReq)
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}
	booking.Invoice = *invoice

	if err := s.Repo.Create(ctx, booking); err != nil {
		if errors.Is(err, availability.ErrSlotConflict) {
			logger.Warn("booking lost the slot race",
				zap.String("specialistID", booking.SpecialistID),
				zap.String("date", booking.Date),
				zap.Int("start", booking.Start))
			return nil, err
		}
		return nil, fmt.Errorf("booking creation failed: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(*booking); err != nil {
			logger.Error("failed to schedule reminder", zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	if s.NotificationSvc != nil {
		s.NotificationSvc.NotifyBookingConfirmed(ctx, *booking)
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("specialistID", booking.SpecialistID),
		zap.String("date", booking.Date),
		zap.Int("start", booking.Start),
		zap.Int("duration", booking.DurationMinutes))
	return booking, nil
}

// CancelBooking cancels a booking owned by the user.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, userID, bookingID string) error {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return fmt.Errorf("booking %s does not belong to user %s", bookingID, userID)
	}
	if err := s.Repo.Cancel(ctx, bookingID); err != nil {
		return err
	}
	if s.NotificationSvc != nil {
		s.NotificationSvc.NotifyBookingCancelled(ctx, *booking)
	}
	return nil
}

// ListUserBookings returns bookings made by the user.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// ListSpecialistBookings returns a specialist's bookings for the admin calendar.
func (s *DefaultBookingService) ListSpecialistBookings(ctx context.Context, specialistID, startDate, endDate string) ([]models.Booking, error) {
	return s.Repo.ListBySpecialist(ctx, specialistID, startDate, endDate)
}

func paymentMethodOrDefault(method string) string {
	if method == "" {
		return "venue"
	}
	return method
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
