// File: quadralink/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quadralink/config"
	"quadralink/database"
	"quadralink/database/repository"
	"quadralink/handlers"
	"quadralink/middleware"
	"quadralink/routes"
	"quadralink/services/booking"
	"quadralink/services/counselor"
	"quadralink/services/notification"
	"quadralink/services/user"
	"quadralink/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetNotifyClient()}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := repository.NewMongoUserRepo()
	institutionRepo := repository.NewMongoInstitutionRepo()
	counselorRepo := repository.NewMongoCounselorRepo()
	bookingRepo := repository.NewMongoBookingRepo()
	notificationRepo := repository.NewMongoNotificationRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:         userRepo,
		Institutions: institutionRepo,
		Logger:       logger,
	}

	counselorService := &counselor.DefaultCounselorService{
		Repo:   counselorRepo,
		Users:  userRepo,
		Logger: logger,
	}

	notificationService := notification.NewDefaultNotificationService(
		notificationRepo,
		&notification.RedisPusher{Client: utils.GetNotifyClient()},
		logger,
	)

	bookingEngine := booking.NewDefaultBookingEngine(
		counselorRepo,
		bookingRepo,
		userRepo,
		notificationService,
		config.BookingLocation(),
		logger,
	)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:          handlers.NewAuthHandler(userService, logger),
		Booking:       handlers.NewBookingHandler(bookingEngine, logger),
		Counselor:     handlers.NewCounselorHandler(counselorService, logger),
		Notifications: handlers.NewNotificationHandler(notificationService, logger),
	}

	// Register routes with the assembled handler bundle.
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
