// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookify/config"
	"bookify/database"
	appointmentRepoPkg "bookify/database/repository/appointment"
	availabilityRepoPkg "bookify/database/repository/availability"
	catalogRepoPkg "bookify/database/repository/catalog"
	userRepoPkg "bookify/database/repository/user"
	"bookify/handlers"
	"bookify/middleware"
	"bookify/routes"
	"bookify/services/booking"
	"bookify/services/calendar"
	"bookify/services/catalog"
	"bookify/services/storage"
	"bookify/services/user"
	"bookify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	storageService, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	serviceRepo := catalogRepoPkg.NewMongoServiceRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	catalogService := &catalog.DefaultCatalogService{
		Repo: serviceRepo,
	}

	calendarService := &calendar.GoogleCalendarService{
		Users: userRepo,
	}

	slotCache := booking.NewRedisSlotCache(utils.GetCacheClient())

	slotEngine := &booking.DefaultSlotEngine{
		Rules:        availabilityRepo,
		Catalog:      serviceRepo,
		Appointments: appointmentRepo,
		Calendar:     calendarService,
		Cache:        slotCache,
	}

	appointmentService := &booking.DefaultAppointmentService{
		Repo:    appointmentRepo,
		Catalog: serviceRepo,
		Cache:   slotCache,
	}

	availabilityService := &booking.DefaultAvailabilityService{
		Repo:  availabilityRepo,
		Cache: slotCache,
	}

	// handlers.
	userHandler := handlers.NewUserHandler(userService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	slotsHandler := handlers.NewSlotsHandler(slotEngine)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	storageHandler := handlers.NewStorageHandler(storageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth & account endpoints.
		RegisterUserHandler:        userHandler.RegisterUserHandler,
		AuthenticateUserHandler:    userHandler.AuthenticateUserHandler,
		RevokeUserAuthTokenHandler: userHandler.RevokeUserAuthTokenHandler,
		GetCurrentUserHandler:      userHandler.GetCurrentUserHandler,
		GetPublicProfileHandler:    userHandler.GetPublicProfileHandler,
		UpdateUserHandler:          userHandler.UpdateUserHandler,
		DeleteUserHandler:          userHandler.DeleteUserHandler,
		UpdateUserPasswordHandler:  userHandler.UpdateUserPasswordHandler,

		// Service catalog endpoints.
		CreateServiceHandler:      catalogHandler.CreateServiceHandler,
		ListOwnServicesHandler:    catalogHandler.ListOwnServicesHandler,
		ListPublicServicesHandler: catalogHandler.ListPublicServicesHandler,
		UpdateServiceHandler:      catalogHandler.UpdateServiceHandler,
		DeleteServiceHandler:      catalogHandler.DeleteServiceHandler,

		// Availability endpoints.
		SetAvailabilityHandler:    availabilityHandler.SetAvailabilityHandler,
		GetAvailabilityHandler:    availabilityHandler.GetAvailabilityHandler,
		DeleteAvailabilityHandler: availabilityHandler.DeleteAvailabilityHandler,

		// Slot & appointment endpoints.
		GetAvailableSlotsHandler: slotsHandler.GetAvailableSlotsHandler,
		BookAppointmentHandler:   appointmentHandler.BookAppointmentHandler,
		ListAppointmentsHandler:  appointmentHandler.ListAppointmentsHandler,
		GetAppointmentHandler:    appointmentHandler.GetAppointmentHandler,
		CancelAppointmentHandler: appointmentHandler.CancelAppointmentHandler,

		// Google Calendar endpoints.
		CalendarConnectURLHandler: calendarHandler.CalendarConnectURLHandler,
		CalendarConnectHandler:    calendarHandler.CalendarConnectHandler,
		CalendarDisconnectHandler: calendarHandler.CalendarDisconnectHandler,

		// Storage endpoints.
		UploadURLHandler: storageHandler.UploadURLHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background health monitoring for Redis and Mongo.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

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
