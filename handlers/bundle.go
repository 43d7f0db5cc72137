package handlers

import (
	businessRepo "slotify/database/repository/business"
	specialistRepo "slotify/database/repository/specialist"
	"slotify/services/availability"
	"slotify/services/booking"
	"slotify/services/schedule"
	"slotify/services/user"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// HandlerBundle groups all endpoint handlers and the services they delegate to.
type HandlerBundle struct {
	Engine         *availability.Engine
	BookingSvc     booking.BookingService
	ScheduleSvc    schedule.ScheduleService
	UserSvc        user.UserService
	SpecialistRepo specialistRepo.SpecialistRepository
	BusinessRepo   businessRepo.BusinessRepository

	// AuthCache backs the auth middleware's validated-claims cache.
	AuthCache *redis.Client
}

// getLogger retrieves a Zap logger from the Gin context or falls back to the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}
