package handlers

import (
	"errors"
	"net/http"

	"slotify/models"
	"slotify/services/schedule"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetWindowsHandler replaces a specialist's availability windows for one date.
func (h *HandlerBundle) SetWindowsHandler(c *gin.Context) {
	logger := getLogger(c)

	specialistID := c.Param("specialistID")
	date := c.Param("date")

	var req models.SetWindowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	windows, err := h.ScheduleSvc.SetWindows(c.Request.Context(), specialistID, date, req.Windows)
	if err != nil {
		var we *schedule.WindowError
		if errors.As(err, &we) {
			utils.JSONErrorCode(c, http.StatusBadRequest, we.Code, we.Message)
			return
		}
		logger.Error("Failed to set windows",
			zap.String("specialistID", specialistID),
			zap.String("date", date),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to set windows", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"windows": windows})
}

// GetWindowsHandler returns a specialist's windows over a date range.
func (h *HandlerBundle) GetWindowsHandler(c *gin.Context) {
	logger := getLogger(c)

	specialistID := c.Param("specialistID")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	windows, err := h.ScheduleSvc.GetWindows(c.Request.Context(), specialistID, startDate, endDate)
	if err != nil {
		var we *schedule.WindowError
		if errors.As(err, &we) {
			utils.JSONErrorCode(c, http.StatusBadRequest, we.Code, we.Message)
			return
		}
		logger.Error("Failed to fetch windows", zap.String("specialistID", specialistID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch windows", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"windows": windows})
}

// UpsertWindowHandler writes a single window, leaving the rest of the date
// untouched.
func (h *HandlerBundle) UpsertWindowHandler(c *gin.Context) {
	logger := getLogger(c)

	specialistID := c.Param("specialistID")
	var window models.AvailabilityWindow
	if err := c.ShouldBindJSON(&window); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	stored, err := h.ScheduleSvc.UpsertWindow(c.Request.Context(), specialistID, window)
	if err != nil {
		var we *schedule.WindowError
		if errors.As(err, &we) {
			utils.JSONErrorCode(c, http.StatusBadRequest, we.Code, we.Message)
			return
		}
		logger.Error("Failed to upsert window",
			zap.String("specialistID", specialistID),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save window", "")
		return
	}

	c.JSON(http.StatusOK, stored)
}

// ApplyWeeklyTemplateHandler replicates a base schedule across the coming weeks.
func (h *HandlerBundle) ApplyWeeklyTemplateHandler(c *gin.Context) {
	logger := getLogger(c)

	specialistID := c.Param("specialistID")
	var tpl models.WeeklyTemplate
	if err := c.ShouldBindJSON(&tpl); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	created, err := h.ScheduleSvc.ApplyWeeklyTemplate(c.Request.Context(), specialistID, tpl)
	if err != nil {
		var we *schedule.WindowError
		if errors.As(err, &we) {
			utils.JSONErrorCode(c, http.StatusBadRequest, we.Code, we.Message)
			return
		}
		logger.Error("Failed to apply weekly template",
			zap.String("specialistID", specialistID),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to apply weekly template", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"windowsCreated": created})
}

// DeleteWindowHandler removes a single availability window.
func (h *HandlerBundle) DeleteWindowHandler(c *gin.Context) {
	logger := getLogger(c)

	windowID := c.Param("windowID")
	if err := h.ScheduleSvc.DeleteWindow(c.Request.Context(), windowID); err != nil {
		logger.Warn("Failed to delete window", zap.String("windowID", windowID), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "Window not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
