package handlers

import (
	"errors"
	"net/http"

	"slotify/middleware"
	"slotify/models"
	"slotify/services/availability"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateBookingHandler books a slot directly, without the wizard flow.
func (h *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString(middleware.CtxUserID)
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	bk, err := h.BookingSvc.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrSlotConflict):
			utils.JSONErrorCode(c, http.StatusConflict, "slot_conflict", "The selected slot was just taken")
		case errors.Is(err, availability.ErrNoAvailability):
			utils.JSONErrorCode(c, http.StatusUnprocessableEntity, "no_availability", "The selected slot is not bookable")
		case errors.Is(err, availability.ErrInvalidDuration):
			utils.JSONErrorCode(c, http.StatusUnprocessableEntity, "invalid_duration", "The requested duration does not fit at the selected slot")
		default:
			logger.Error("Failed to create booking", zap.String("userID", userID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, bk)
}

// CancelBookingHandler cancels one of the caller's bookings.
func (h *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString(middleware.CtxUserID)
	bookingID := c.Param("bookingID")

	if err := h.BookingSvc.CancelBooking(c.Request.Context(), userID, bookingID); err != nil {
		logger.Warn("Failed to cancel booking",
			zap.String("userID", userID),
			zap.String("bookingID", bookingID),
			zap.Error(err))
		utils.JSONError(c, http.StatusUnprocessableEntity, "Failed to cancel booking", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ListMyBookingsHandler returns the caller's bookings.
func (h *HandlerBundle) ListMyBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString(middleware.CtxUserID)
	bookings, err := h.BookingSvc.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list bookings", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", "")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListSpecialistBookingsHandler returns a specialist's bookings over a date
// range, for admin schedule views.
func (h *HandlerBundle) ListSpecialistBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	specialistID := c.Param("specialistID")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if !utils.ValidDate(startDate) || !utils.ValidDate(endDate) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "startDate and endDate must be YYYY-MM-DD")
		return
	}

	bookings, err := h.BookingSvc.ListSpecialistBookings(c.Request.Context(), specialistID, startDate, endDate)
	if err != nil {
		logger.Error("Failed to list specialist bookings",
			zap.String("specialistID", specialistID),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", "")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// InitiateSessionHandler starts a booking wizard session: the slot listing is
// computed once and cached with the session.
func (h *HandlerBundle) InitiateSessionHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString(middleware.CtxUserID)
	var req models.InitiateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	session, err := h.BookingSvc.InitiateSession(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Failed to initiate booking session", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to initiate booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSessionHandler records the user's slot choice and returns the
// durations that fit there.
func (h *HandlerBundle) UpdateSessionHandler(c *gin.Context) {
	logger := getLogger(c)

	sessionID := c.Param("sessionID")
	var req models.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	session, err := h.BookingSvc.UpdateSession(c.Request.Context(), sessionID, req)
	if err != nil {
		if errors.Is(err, availability.ErrNoAvailability) {
			utils.JSONErrorCode(c, http.StatusUnprocessableEntity, "no_availability", "The selected slot is not bookable")
			return
		}
		logger.Warn("Failed to update booking session", zap.String("sessionID", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusUnprocessableEntity, "Failed to update booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmSessionHandler finalizes a wizard session into a booking.
func (h *HandlerBundle) ConfirmSessionHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString(middleware.CtxUserID)
	var req models.ConfirmSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	bk, err := h.BookingSvc.ConfirmSession(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrSlotConflict):
			utils.JSONErrorCode(c, http.StatusConflict, "slot_conflict", "The selected slot was just taken")
		case errors.Is(err, availability.ErrNoAvailability):
			utils.JSONErrorCode(c, http.StatusUnprocessableEntity, "no_availability", "The selected slot is not bookable")
		case errors.Is(err, availability.ErrInvalidDuration):
			utils.JSONErrorCode(c, http.StatusUnprocessableEntity, "invalid_duration", "The requested duration does not fit at the selected slot")
		default:
			logger.Warn("Failed to confirm booking session",
				zap.String("sessionID", req.SessionID),
				zap.Error(err))
			utils.JSONError(c, http.StatusUnprocessableEntity, "Failed to confirm booking", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, bk)
}

// CancelSessionHandler abandons a wizard session.
func (h *HandlerBundle) CancelSessionHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.BookingSvc.CancelSession(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to cancel session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
