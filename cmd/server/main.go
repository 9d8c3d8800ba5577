package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/officebook/service-booking/internal/application"
	"github.com/officebook/service-booking/internal/auth"
	"github.com/officebook/service-booking/internal/config"
	"github.com/officebook/service-booking/internal/events"
	"github.com/officebook/service-booking/internal/handler"
	"github.com/officebook/service-booking/internal/logger"
	"github.com/officebook/service-booking/internal/middleware"
	"github.com/officebook/service-booking/internal/repository"
	"github.com/officebook/service-booking/internal/seed"
	"github.com/officebook/service-booking/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-booking")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-booking",
		zap.String("port", cfg.Port),
		zap.String("data_dir", cfg.DataDir),
		zap.Bool("guarded_create", cfg.GuardedCreate),
	)

	// Open the document store. The store handle is process-wide state:
	// initialized once here, shared by every request.
	store, err := storage.NewOsFileStore(cfg.DataDir, log)
	if err != nil {
		log.Fatal("failed to open document store", zap.Error(err))
	}

	// Initialize event publisher; disabled without brokers.
	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaBrokers, log)
		publisher = kafkaPublisher
		log.Info("kafka event publishing enabled", zap.Strings("brokers", cfg.KafkaBrokers))
	}
	defer func() { _ = publisher.Close() }()

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize repositories
	bookingRepo := repository.NewStoreBookingRepository(store, log)
	userRepo := repository.NewStoreUserRepository(store, log)

	// Initialize application services
	bookingService := application.NewBookingService(bookingRepo, publisher, log, cfg.GuardedCreate)
	authService := application.NewAuthService(userRepo, jwtManager, log)
	workplaceService := application.NewWorkplaceService(log)

	// Seed default users on a fresh store
	if err := seed.EnsureDefaultUsers(context.Background(), authService, log); err != nil {
		log.Fatal("failed to seed default users", zap.Error(err))
	}

	// Initialize HTTP handlers
	bookingHandler := handler.NewBookingHandler(bookingService)
	authHandler := handler.NewAuthHandler(authService)
	workplaceHandler := handler.NewWorkplaceHandler(workplaceService)

	// Setup Gin router
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	router.Use(middleware.SecurityHeadersMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "service-booking"})
	})

	// Register routes
	authHandler.RegisterRoutes(&router.RouterGroup)
	workplaceHandler.RegisterRoutes(&router.RouterGroup)
	bookingHandler.RegisterRoutes(&router.RouterGroup, jwtManager)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-booking...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-booking stopped")
}
