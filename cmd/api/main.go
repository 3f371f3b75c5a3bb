// @title           User Status Service API
// @version         1.0
// @description     Presence status of users: type, icon, message and automatic expiry

// @host      localhost:8080
// @BasePath  /api/user-status

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	_ "user-status-service/docs" // Swagger docs import

	"user-status-service/internal/clock"
	"user-status-service/internal/config"
	"user-status-service/internal/database"
	"user-status-service/internal/emoji"
	"user-status-service/internal/events"
	"user-status-service/internal/job"
	"user-status-service/internal/metrics"
	"user-status-service/internal/repository"
	"user-status-service/internal/router"
	"user-status-service/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Server.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting User Status Service",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.Bool("emoji_supported", cfg.Status.EmojiSupported),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := database.NewWithRetry(ctx, func() (*gorm.DB, error) {
		return database.New(dbConfig)
	}, cfg.Database.ConnectRetries, cfg.Database.RetryInterval, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	logger.Info("Database connected successfully")

	if err := database.SafeAutoMigrateWithRetry(db, logger, 3, 2*time.Second); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	logger.Info("Metrics initialized")

	// Initialize Redis (optional)
	redisClient, err := database.NewRedisClient(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Failed to connect to Redis, status events disabled", zap.Error(err))
		redisClient = nil
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if redisClient != nil {
		publisher = events.NewRedisPublisher(redisClient, logger)
	}

	// Initialize service layer
	validator := emoji.NewValidator(cfg.Status.EmojiSupported)
	statusRepo := repository.NewStatusRepository(db)
	statusService := service.NewStatusService(statusRepo, clock.System{}, validator, publisher, m, logger)

	if redisClient != nil {
		subscriber := events.NewUserDeletedSubscriber(redisClient, statusService, logger)
		if err := subscriber.Start(ctx); err != nil {
			logger.Warn("Failed to subscribe to user deletion events", zap.Error(err))
		}
	}

	// Schedule the expiry sweep
	scheduler := job.NewScheduler(logger)
	cleanupJob := job.NewExpiredStatusCleanupJob(statusService, m, logger)
	if err := scheduler.Add("expired-status-cleanup", cfg.Status.CleanupSchedule, cleanupJob); err != nil {
		logger.Fatal("Failed to schedule expired status cleanup", zap.Error(err))
	}
	scheduler.Start()

	collector := metrics.NewBusinessMetricsCollector(db, m, logger, cfg.Status.MetricsInterval)
	collector.Start()

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:             db,
		Redis:          redisClient,
		Logger:         logger,
		JWTSecret:      cfg.Auth.JWTSecret,
		BasePath:       cfg.Server.BasePath,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Metrics:        m,
		StatusService:  statusService,
		EmojiValidator: validator,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("User Status Service started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%d%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := scheduler.Stop(shutdownCtx); err != nil {
		logger.Warn("Cleanup job did not finish before shutdown", zap.Error(err))
	}
	collector.Stop()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", zap.Error(err))
		}
	}
	if err := database.Close(db); err != nil {
		logger.Warn("Failed to close database", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
