package routes

import (
	"net/http"
	"time"

	"slotify/handlers"
	"slotify/middleware"
	"slotify/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes.
		api.Use(middleware.AuthMiddleware(hb.AuthCache))
		api.GET("/me", hb.GetProfileHandler)
		api.GET("/me/bookings", hb.ListMyBookingsHandler)
	}
}

// RegisterAvailabilityRoutes registers the public slot listing endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/specialists")
	{
		api.GET("", hb.ListSpecialistsHandler)
		api.GET("/:specialistID", hb.GetSpecialistHandler)
		api.GET("/:specialistID/slots", hb.GetSlotsHandler)
		api.GET("/:specialistID/durations", hb.GetDurationsHandler)
	}
}

// RegisterBookingRoutes sets up the booking endpoints: direct creation plus
// the wizard session flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware(hb.AuthCache))
		api.POST("", hb.CreateBookingHandler)
		api.DELETE("/:bookingID", hb.CancelBookingHandler)

		api.POST("/session", hb.InitiateSessionHandler)
		api.PUT("/session/:sessionID", hb.UpdateSessionHandler)
		api.POST("/confirm", hb.ConfirmSessionHandler)
		api.DELETE("/session/:sessionID", hb.CancelSessionHandler)
	}
}

// RegisterScheduleRoutes sets up the admin schedule management endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.AuthMiddleware(hb.AuthCache), middleware.RequireRole(models.RoleAdmin))
		api.GET("/:specialistID/windows", hb.GetWindowsHandler)
		api.PUT("/:specialistID/windows/:date", hb.SetWindowsHandler)
		api.PUT("/:specialistID/window", hb.UpsertWindowHandler)
		api.POST("/:specialistID/weekly", hb.ApplyWeeklyTemplateHandler)
		api.DELETE("/windows/:windowID", hb.DeleteWindowHandler)
		api.GET("/:specialistID/bookings", hb.ListSpecialistBookingsHandler)
	}
}

// RegisterBusinessRoutes sets up tenant management. Listing and reading are
// open to admins; creation and updates are superadmin-only. Staff and service
// management is scoped to the admin's own tenant.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/businesses")
	{
		api.GET("/:businessID/services", hb.ListServicesHandler)

		api.Use(middleware.AuthMiddleware(hb.AuthCache))
		api.GET("", middleware.RequireRole(models.RoleAdmin), hb.ListBusinessesHandler)
		api.GET("/:businessID", middleware.RequireRole(models.RoleAdmin), hb.GetBusinessHandler)
		api.POST("", middleware.RequireRole(models.RoleSuperadmin), hb.CreateBusinessHandler)
		api.PUT("/:businessID", middleware.RequireRole(models.RoleSuperadmin), hb.UpdateBusinessHandler)

		scoped := api.Group("/:businessID")
		scoped.Use(middleware.RequireBusinessScope("businessID"))
		scoped.POST("/specialists", hb.CreateSpecialistHandler)
		scoped.PUT("/specialists/:specialistID", hb.UpdateSpecialistHandler)
		scoped.DELETE("/specialists/:specialistID", hb.DeleteSpecialistHandler)
		scoped.PUT("/services", hb.UpsertServiceHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Slotify"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterBusinessRoutes(r, hb)
}
