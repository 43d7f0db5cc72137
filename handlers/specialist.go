package handlers

import (
	"net/http"
	"time"

	"slotify/models"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetSpecialistHandler returns one specialist profile.
func (h *HandlerBundle) GetSpecialistHandler(c *gin.Context) {
	specialistID := c.Param("specialistID")
	specialist, err := h.SpecialistRepo.GetByID(c.Request.Context(), specialistID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Specialist not found", "")
		return
	}
	c.JSON(http.StatusOK, specialist)
}

// ListSpecialistsHandler lists specialists, filtered by business or vertical.
func (h *HandlerBundle) ListSpecialistsHandler(c *gin.Context) {
	logger := getLogger(c)
	ctx := c.Request.Context()

	var (
		specialists []models.Specialist
		err         error
	)
	switch {
	case c.Query("businessId") != "":
		specialists, err = h.SpecialistRepo.ListByBusiness(ctx, c.Query("businessId"))
	case c.Query("vertical") != "":
		vertical := c.Query("vertical")
		if !models.KnownVertical(vertical) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "unknown vertical "+vertical)
			return
		}
		specialists, err = h.SpecialistRepo.ListByVertical(ctx, vertical)
	default:
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "provide businessId or vertical")
		return
	}
	if err != nil {
		logger.Error("Failed to list specialists", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list specialists", "")
		return
	}
	c.JSON(http.StatusOK, specialists)
}

// CreateSpecialistHandler registers a specialist under a business.
func (h *HandlerBundle) CreateSpecialistHandler(c *gin.Context) {
	logger := getLogger(c)

	var specialist models.Specialist
	if err := c.ShouldBindJSON(&specialist); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if !models.KnownVertical(specialist.BusinessType) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "unknown vertical "+specialist.BusinessType)
		return
	}

	specialist.ID = uuid.New().String()
	specialist.BusinessID = c.Param("businessID")
	specialist.Active = true
	now := time.Now()
	specialist.CreatedAt = now
	specialist.UpdatedAt = now

	if err := h.SpecialistRepo.Create(c.Request.Context(), &specialist); err != nil {
		logger.Error("Failed to create specialist", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create specialist", "")
		return
	}
	c.JSON(http.StatusCreated, specialist)
}

// UpdateSpecialistHandler updates a specialist profile.
func (h *HandlerBundle) UpdateSpecialistHandler(c *gin.Context) {
	logger := getLogger(c)
	ctx := c.Request.Context()

	existing, err := h.SpecialistRepo.GetByID(ctx, c.Param("specialistID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Specialist not found", "")
		return
	}

	var update models.Specialist
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	update.ID = existing.ID
	update.BusinessID = existing.BusinessID
	update.CreatedAt = existing.CreatedAt
	update.UpdatedAt = time.Now()

	if err := h.SpecialistRepo.Update(ctx, &update); err != nil {
		logger.Error("Failed to update specialist", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update specialist", "")
		return
	}
	c.JSON(http.StatusOK, update)
}

// DeleteSpecialistHandler removes a specialist.
func (h *HandlerBundle) DeleteSpecialistHandler(c *gin.Context) {
	if err := h.SpecialistRepo.Delete(c.Request.Context(), c.Param("specialistID")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Specialist not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListServicesHandler lists a business's service offerings.
func (h *HandlerBundle) ListServicesHandler(c *gin.Context) {
	logger := getLogger(c)

	services, err := h.SpecialistRepo.ListServices(c.Request.Context(), c.Param("businessID"))
	if err != nil {
		logger.Error("Failed to list services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list services", "")
		return
	}
	c.JSON(http.StatusOK, services)
}

// UpsertServiceHandler creates or updates a service offering.
func (h *HandlerBundle) UpsertServiceHandler(c *gin.Context) {
	logger := getLogger(c)

	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if service.DurationMinutes <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "duration_minutes must be positive")
		return
	}
	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	service.BusinessID = c.Param("businessID")

	if err := h.SpecialistRepo.UpsertService(c.Request.Context(), service); err != nil {
		logger.Error("Failed to upsert service", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save service", "")
		return
	}
	c.JSON(http.StatusOK, service)
}
