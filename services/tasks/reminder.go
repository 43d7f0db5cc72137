package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"slotify/config"
	"slotify/models"
	"slotify/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// ReminderPayload is the asynq task body for an appointment reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}

// NewReminderTask builds the asynq task and its scheduling options.
func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// AsynqReminderScheduler enqueues reminders onto the redis-backed queue.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// NewAsynqReminderScheduler builds a scheduler against the configured redis queue.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleReminder enqueues a reminder 24 hours before the appointment.
// Appointments starting sooner than that get no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(booking models.Booking) error {
	date, err := time.Parse("2006-01-02", booking.Date)
	if err != nil {
		return fmt.Errorf("invalid booking date %q: %w", booking.Date, err)
	}
	startAt := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local).
		Add(time.Duration(booking.Start) * time.Minute)
	fireAt := startAt.Add(-24 * time.Hour)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := ReminderPayload{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		Title:     "Upcoming appointment",
		Body:      fmt.Sprintf("You have an appointment tomorrow at %s.", utils.FormatClock(booking.Start)),
		FireDate:  fireAt.Format(time.RFC3339),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}

	utils.GetLogger().Info("reminder scheduled",
		zap.String("bookingID", booking.ID),
		zap.Time("fireAt", fireAt))
	return nil
}
