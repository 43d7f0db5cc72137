package handlers

import (
	"net/http"

	"slotify/middleware"
	"slotify/models"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterUserHandler creates a customer account and returns an auth token.
func (h *HandlerBundle) RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	account, token, err := h.UserSvc.Register(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Registration failed", zap.String("email", req.Email), zap.Error(err))
		utils.JSONError(c, http.StatusConflict, "Registration failed", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": account, "token": token})
}

// AuthenticateUserHandler verifies credentials and returns an auth token.
func (h *HandlerBundle) AuthenticateUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	account, token, err := h.UserSvc.Authenticate(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Login failed", zap.String("email", req.Email))
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": account, "token": token})
}

// GetProfileHandler returns the authenticated user's profile, including
// in-app notifications.
func (h *HandlerBundle) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString(middleware.CtxUserID)
	account, err := h.UserSvc.GetByID(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get profile", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "Profile not found", "")
		return
	}
	c.JSON(http.StatusOK, account)
}
