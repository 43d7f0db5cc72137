package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotify/config"
	"slotify/cron"
	"slotify/database"
	availabilityRepo "slotify/database/repository/availability"
	bookingRepoPkg "slotify/database/repository/booking"
	businessRepoPkg "slotify/database/repository/business"
	specialistRepoPkg "slotify/database/repository/specialist"
	userRepoPkg "slotify/database/repository/user"
	"slotify/handlers"
	"slotify/middleware"
	"slotify/routes"
	"slotify/services/availability"
	"slotify/services/booking"
	"slotify/services/notification"
	"slotify/services/schedule"
	"slotify/services/tasks"
	"slotify/services/user"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	windowRepo := availabilityRepo.NewMongoWorkingHoursRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	specialistRepo := specialistRepoPkg.NewMongoSpecialistRepo()
	businessRepo := businessRepoPkg.NewMongoBusinessRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	for _, ensure := range []func() error{
		windowRepo.EnsureIndexes,
		bookingRepo.EnsureIndexes,
		specialistRepo.EnsureIndexes,
		businessRepo.EnsureIndexes,
		userRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	// services.
	engine := &availability.Engine{
		Windows:       windowRepo,
		Bookings:      bookingRepo,
		SlotSize:      config.AppConfig.SlotSizeMinutes,
		ListingBuffer: config.AppConfig.ListingBufferMinutes,
	}

	notificationService := &notification.DefaultNotificationService{
		Users: userRepo,
	}

	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	scheduleService := &schedule.DefaultScheduleService{
		Repo: windowRepo,
	}

	paymentHandler := booking.NewPaymentHandler(logger, userRepo)
	bookingService := &booking.DefaultBookingService{
		Repo:            bookingRepo,
		SpecialistRepo:  specialistRepo,
		Engine:          engine,
		PaymentHandler:  paymentHandler,
		NotificationSvc: notificationService,
		SessionCache:    utils.GetSessionCacheClient(),
		Reminders:       tasks.NewAsynqReminderScheduler(),
		SessionTTL:      config.AppConfig.SessionTTLMinutes,
	}

	// Background reminder worker.
	cron.InitReminderWorker(notificationService)

	// Assemble the handler bundle and register routes.
	handlerBundle := &handlers.HandlerBundle{
		Engine:         engine,
		BookingSvc:     bookingService,
		ScheduleSvc:    scheduleService,
		UserSvc:        userService,
		SpecialistRepo: specialistRepo,
		BusinessRepo:   businessRepo,
		AuthCache:      utils.GetAuthCacheClient(),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
