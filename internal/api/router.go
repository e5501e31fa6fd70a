package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/farmsight/farm-health-api/internal/api/handler"
	"github.com/farmsight/farm-health-api/internal/api/middleware"
	"github.com/farmsight/farm-health-api/internal/core/ports"
	"github.com/farmsight/farm-health-api/internal/core/service"
	mongodb "github.com/farmsight/farm-health-api/internal/infrastructure/db/mongo"
	redisdb "github.com/farmsight/farm-health-api/internal/infrastructure/db/redis"
)

// Dependencies carries everything the router needs to assemble the handlers.
type Dependencies struct {
	Mongo      *mongo.Database
	Redis      *redis.Client
	Classifier ports.Classifier
	Uploads    ports.UploadStore
	Activity   ports.ActivityRecorder
	JWTSecret  string
	TokenTTL   time.Duration
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("farmhealth"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(deps.Mongo)
	scanRepo := mongodb.NewScanRepository(deps.Mongo)
	alertRepo := mongodb.NewAlertRepository(deps.Mongo)
	complianceRepo := mongodb.NewComplianceRepository(deps.Mongo)
	trainingRepo := mongodb.NewTrainingRepository(deps.Mongo)

	// --- Services ---
	authService := service.NewAuthService(userRepo, deps.JWTSecret, deps.TokenTTL)
	scanService := service.NewScanService(scanRepo, alertRepo, deps.Classifier, deps.Uploads, deps.Activity, deps.Logger)
	alertService := service.NewAlertService(alertRepo, deps.Activity, deps.Logger)
	complianceService := service.NewComplianceService(complianceRepo, deps.Uploads, deps.Logger)
	statsService := service.NewStatsService(scanRepo, alertRepo, complianceRepo, redisdb.NewStatsCache(deps.Redis), deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	scanHandler := handler.NewScanHandler(scanService)
	alertHandler := handler.NewAlertHandler(alertService)
	complianceHandler := handler.NewComplianceHandler(complianceService)
	trainingHandler := handler.NewTrainingHandler(trainingRepo)
	statsHandler := handler.NewStatsHandler(statsService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	authRequired := middleware.Auth(deps.JWTSecret)

	// --- Public routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.GET("/api/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Protected routes ---
	protected := e.Group("/api", authRequired)
	protected.POST("/scan", scanHandler.Submit)
	protected.GET("/scans", scanHandler.List)
	protected.POST("/compliance", complianceHandler.Create)
	protected.GET("/compliance", complianceHandler.List)
	protected.GET("/training", trainingHandler.List)
	protected.GET("/alerts", alertHandler.List)
	protected.PATCH("/alerts/:id/read", alertHandler.MarkRead)
	protected.GET("/dashboard/stats", statsHandler.Dashboard)

	return e
}
