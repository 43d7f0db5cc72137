package notification

import (
	"context"
	"fmt"
	"time"

	userRepo "slotify/database/repository/user"
	"slotify/models"
	"slotify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService delivers in-app notifications about booking events.
type NotificationService interface {
	NotifyBookingConfirmed(ctx context.Context, booking models.Booking)
	NotifyBookingCancelled(ctx context.Context, booking models.Booking)
	SendReminder(ctx context.Context, userID, title, body string, data map[string]interface{}) error
}

// DefaultNotificationService appends notifications to the user record.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

func (s *DefaultNotificationService) NotifyBookingConfirmed(ctx context.Context, booking models.Booking) {
	msg := fmt.Sprintf("Your appointment on %s at %s is confirmed.", booking.Date, utils.FormatClock(booking.Start))
	s.append(ctx, booking.UserID, "booking_confirmed", msg, map[string]interface{}{
		"bookingId": booking.ID,
		"date":      booking.Date,
		"start":     booking.Start,
	})
}

func (s *DefaultNotificationService) NotifyBookingCancelled(ctx context.Context, booking models.Booking) {
	msg := fmt.Sprintf("Your appointment on %s at %s was cancelled.", booking.Date, utils.FormatClock(booking.Start))
	s.append(ctx, booking.UserID, "booking_cancelled", msg, map[string]interface{}{
		"bookingId": booking.ID,
	})
}

// SendReminder delivers an appointment reminder; called from the async worker.
func (s *DefaultNotificationService) SendReminder(ctx context.Context, userID, title, body string, data map[string]interface{}) error {
	notification := models.Notification{
		ID:        uuid.New().String(),
		Type:      "appointment_reminder",
		Message:   fmt.Sprintf("%s: %s", title, body),
		Data:      data,
		CreatedAt: time.Now(),
	}
	return s.Users.AppendNotification(ctx, userID, notification)
}

func (s *DefaultNotificationService) append(ctx context.Context, userID, kind, msg string, data map[string]interface{}) {
	notification := models.Notification{
		ID:        uuid.New().String(),
		Type:      kind,
		Message:   msg,
		Data:      data,
		CreatedAt: time.Now(),
	}
	if err := s.Users.AppendNotification(ctx, userID, notification); err != nil {
		utils.GetLogger().Error("failed to append notification",
			zap.String("userID", userID),
			zap.String("type", kind),
			zap.Error(err))
	}
}
