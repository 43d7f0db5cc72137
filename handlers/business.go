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

// ListBusinessesHandler lists all tenants.
func (h *HandlerBundle) ListBusinessesHandler(c *gin.Context) {
	logger := getLogger(c)

	businesses, err := h.BusinessRepo.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list businesses", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list businesses", "")
		return
	}
	c.JSON(http.StatusOK, businesses)
}

// GetBusinessHandler returns one tenant.
func (h *HandlerBundle) GetBusinessHandler(c *gin.Context) {
	business, err := h.BusinessRepo.GetByID(c.Request.Context(), c.Param("businessID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Business not found", "")
		return
	}
	c.JSON(http.StatusOK, business)
}

// CreateBusinessHandler onboards a new tenant.
func (h *HandlerBundle) CreateBusinessHandler(c *gin.Context) {
	logger := getLogger(c)

	var business models.Business
	if err := c.ShouldBindJSON(&business); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if !models.KnownVertical(business.Vertical) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "unknown vertical "+business.Vertical)
		return
	}

	business.ID = uuid.New().String()
	business.Active = true
	now := time.Now()
	business.CreatedAt = now
	business.UpdatedAt = now

	if err := h.BusinessRepo.Create(c.Request.Context(), &business); err != nil {
		logger.Error("Failed to create business", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create business", "")
		return
	}
	c.JSON(http.StatusCreated, business)
}

// UpdateBusinessHandler updates a tenant's settings.
func (h *HandlerBundle) UpdateBusinessHandler(c *gin.Context) {
	logger := getLogger(c)
	ctx := c.Request.Context()

	existing, err := h.BusinessRepo.GetByID(ctx, c.Param("businessID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Business not found", "")
		return
	}

	var update models.Business
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if update.Vertical != "" && !models.KnownVertical(update.Vertical) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "unknown vertical "+update.Vertical)
		return
	}

	update.ID = existing.ID
	if update.Vertical == "" {
		update.Vertical = existing.Vertical
	}
	update.CreatedAt = existing.CreatedAt
	update.UpdatedAt = time.Now()

	if err := h.BusinessRepo.Update(ctx, &update); err != nil {
		logger.Error("Failed to update business", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update business", "")
		return
	}
	c.JSON(http.StatusOK, update)
}
