package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vendora/config"
	"vendora/database"
	bookingRepo "vendora/database/repository/booking"
	catalogRepo "vendora/database/repository/catalog"
	"vendora/handlers"
	"vendora/metrics"
	"vendora/middleware"
	"vendora/routes"
	"vendora/services/booking"
	"vendora/services/catalog"
	"vendora/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	metrics.Register()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create booking indexes: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bkRepo := bookingRepo.NewMongoBookingRepo()
	svcRepo := catalogRepo.NewMongoServiceRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{Repo: svcRepo}
	bookingService := &booking.DefaultBookingService{
		Repo:        bkRepo,
		CatalogRepo: svcRepo,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	scheduleHandler := handlers.NewScheduleHandler(bookingService)

	routes.RegisterRoutes(router, bookingHandler, catalogHandler, scheduleHandler)

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
