package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"slotify/models"
	"slotify/services/availability"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetSlotsHandler lists a specialist's candidate slots for a date. Every slot
// in the window range is returned, classified available or booked, so UIs can
// render booked slots greyed out.
func (h *HandlerBundle) GetSlotsHandler(c *gin.Context) {
	logger := getLogger(c)

	specialistID := c.Param("specialistID")
	date := c.Query("date")
	if !utils.ValidDate(date) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "query parameter 'date' must be YYYY-MM-DD")
		return
	}

	businessType := c.Query("businessType")
	slots, err := h.Engine.ComputeAvailableSlots(c.Request.Context(), specialistID, businessType, date)
	if err != nil {
		logger.Error("Failed to compute slots",
			zap.String("specialistID", specialistID),
			zap.String("date", date),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute slots", "")
		return
	}

	c.JSON(http.StatusOK, models.SlotListResponse{
		SpecialistID: specialistID,
		Date:         date,
		SlotSize:     availability.SlotSizeMinutes,
		Slots:        slots,
	})
}

// GetDurationsHandler reports which appointment durations fit at a chosen slot.
// A slot outside every open window is reported as not bookable rather than
// falling back to an unrestricted duration list.
func (h *HandlerBundle) GetDurationsHandler(c *gin.Context) {
	logger := getLogger(c)

	specialistID := c.Param("specialistID")
	date := c.Query("date")
	if !utils.ValidDate(date) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "query parameter 'date' must be YYYY-MM-DD")
		return
	}
	// Clients send the slot start as minutes from midnight or an "HH:MM" clock.
	startParam := c.Query("start")
	start, err := strconv.Atoi(startParam)
	if err != nil {
		start, err = utils.ParseClock(startParam)
	}
	if err != nil || start < 0 || start >= 24*60 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "query parameter 'start' must be minutes from midnight or HH:MM")
		return
	}

	businessType := c.Query("businessType")
	durations, err := h.Engine.ValidDurationsAt(c.Request.Context(), specialistID, businessType, date, start, nil)
	if err != nil {
		if errors.Is(err, availability.ErrNoAvailability) {
			utils.JSONErrorCode(c, http.StatusUnprocessableEntity, "no_availability", "The selected slot is not bookable")
			return
		}
		logger.Error("Failed to compute durations",
			zap.String("specialistID", specialistID),
			zap.String("date", date),
			zap.Int("start", start),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute durations", "")
		return
	}

	c.JSON(http.StatusOK, models.DurationListResponse{
		SpecialistID: specialistID,
		Date:         date,
		Start:        start,
		Durations:    durations,
	})
}
