package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"slotify/models"
	"slotify/services/availability"

	"github.com/google/uuid"
)

const sessionKeyPrefix = "booking_session:"

func (s *DefaultBookingService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return time.Duration(s.SessionTTL) * time.Minute
	}
	return 15 * time.Minute
}

// InitiateSession starts a booking wizard: the slot listing for the chosen
// specialist and date is computed once and cached with the session.
func (s *DefaultBookingService) InitiateSession(ctx context.Context, userID string, req models.InitiateSessionRequest) (*models.BookingSession, error) {
	specialist, err := s.SpecialistRepo.GetByID(ctx, req.SpecialistID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve specialist: %w", err)
	}

	slots, err := s.Engine.ComputeAvailableSlots(ctx, specialist.ID, specialist.BusinessType, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to compute slots: %w", err)
	}

	session := &models.BookingSession{
		SessionID:    uuid.New().String(),
		UserID:       userID,
		BusinessType: specialist.BusinessType,
		SpecialistID: specialist.ID,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Slots:        slots,
		SelectedSlot: -1,
	}
	if err := s.putSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSession records the user's slot selection and computes which durations
// fit there. ErrNoAvailability propagates: the slot is not bookable and the
// duration list must stay empty rather than widen.
func (s *DefaultBookingService) UpdateSession(ctx context.Context, sessionID string, req models.UpdateSessionRequest) (*models.BookingSession, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	durations, err := s.Engine.ValidDurationsAt(ctx, session.SpecialistID, session.BusinessType, session.Date, req.SelectedSlot, availability.DefaultDurations)
	if err != nil {
		return nil, err
	}

	session.SelectedSlot = req.SelectedSlot
	session.Durations = durations
	if err := s.putSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmSession converts the wizard state into a real booking and discards
// the session. The CreateBooking path re-validates everything: the cached
// listing is advisory only.
func (s *DefaultBookingService) ConfirmSession(ctx context.Context, userID string, req models.ConfirmSessionRequest) (*models.Booking, error) {
	session, err := s.getSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, fmt.Errorf("session %s does not belong to user %s", req.SessionID, userID)
	}
	if session.SelectedSlot < 0 {
		return nil, fmt.Errorf("session %s has no selected slot", req.SessionID)
	}

	booking, err := s.CreateBooking(ctx, userID, models.CreateBookingRequest{
		SpecialistID:    session.SpecialistID,
		ServiceID:       session.ServiceID,
		Date:            session.Date,
		Start:           session.SelectedSlot,
		DurationMinutes: req.DurationMinutes,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return nil, err
	}

	_ = s.CancelSession(ctx, req.SessionID)
	return booking, nil
}

// CancelSession discards a wizard session.
func (s *DefaultBookingService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.SessionCache.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to discard session %s: %w", sessionID, err)
	}
	return nil
}

func (s *DefaultBookingService) putSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.SessionCache.Set(ctx, sessionKeyPrefix+session.SessionID, data, s.sessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingService) getSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.SessionCache.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("booking session not found or expired")
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}
