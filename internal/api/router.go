package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/marketplacepro/platform/docs"
	"github.com/marketplacepro/platform/internal/api/handler"
	"github.com/marketplacepro/platform/internal/api/middleware"
	"github.com/marketplacepro/platform/internal/core/domain"
	"github.com/marketplacepro/platform/internal/core/service"
	infradb "github.com/marketplacepro/platform/internal/infrastructure/db/mongo"
	infraredis "github.com/marketplacepro/platform/internal/infrastructure/db/redis"
)

// Options carries the router's runtime dependencies and knobs.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	authRepo := infradb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, opts.JWTSecret, opts.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	settingsRepo := infradb.NewSettingsRepository(db)
	settingsCache := infraredis.NewSettingsCache(rdb)
	settingsService := service.NewSettingsService(settingsRepo, settingsCache, opts.Logger)
	settingsHandler := handler.NewSettingsHandler(settingsService, opts.Logger)

	authMiddleware := middleware.Auth(opts.JWTSecret)
	adminOnly := middleware.RequireUserType(domain.TypeAdmin)

	// --- Auth routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.POST("/auth/verify-email", authHandler.VerifyEmail)
	apiGroup.POST("/auth/resend-verification", authHandler.ResendVerification)

	// --- Admin routes ---
	admin := apiGroup.Group("/admin", authMiddleware, adminOnly)
	admin.GET("/settings", settingsHandler.List)
	admin.GET("/settings/:category", settingsHandler.Get)
	admin.PUT("/settings/:category", settingsHandler.Update)

	partnerHandler := handler.NewPartnerHandler(authService, opts.Logger)
	admin.GET("/partners/pending", partnerHandler.Pending)
	admin.POST("/partners/:id/verify", partnerHandler.Verify)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
