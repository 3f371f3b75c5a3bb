package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-status-service/internal/emoji"
	"user-status-service/internal/handler"
	"user-status-service/internal/metrics"
	"user-status-service/internal/middleware"
	"user-status-service/internal/service"
)

// Config holds the dependencies of the HTTP router
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	JWTSecret      string
	BasePath       string
	AllowedOrigins []string
	Metrics        *metrics.Metrics
	StatusService  service.StatusService
	EmojiValidator emoji.Validator
}

// Setup builds the gin engine with all routes registered
func Setup(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	statusHandler := handler.NewStatusHandler(cfg.StatusService, cfg.Logger)
	capabilitiesHandler := handler.NewCapabilitiesHandler(cfg.EmojiValidator)
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)

	// Health and metrics endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group(cfg.BasePath)
	{
		// Root routes already cover an empty base path
		if cfg.BasePath != "" && cfg.BasePath != "/" {
			api.GET("/health", healthHandler.Health)
			api.GET("/ready", healthHandler.Ready)
			api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		}

		api.GET("/capabilities", capabilitiesHandler.GetCapabilities)

		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(cfg.JWTSecret))
		{
			authenticated.GET("/statuses", statusHandler.ListStatuses)
			authenticated.GET("/statuses/:userId", statusHandler.GetStatus)

			authenticated.GET("/user_status", statusHandler.GetMyStatus)
			authenticated.PUT("/user_status", statusHandler.SetMyStatus)
			authenticated.DELETE("/user_status", statusHandler.ClearMyStatus)
		}
	}

	return r
}
