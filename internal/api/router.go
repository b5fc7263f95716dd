package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/estatehub/auth-service/internal/api/handler"
	"github.com/estatehub/auth-service/internal/api/middleware"
	"github.com/estatehub/auth-service/internal/core/domain"
	"github.com/estatehub/auth-service/internal/core/ports"
	"github.com/estatehub/auth-service/internal/core/service"
	mongostore "github.com/estatehub/auth-service/internal/infrastructure/db/mongo"
	redisstore "github.com/estatehub/auth-service/internal/infrastructure/db/redis"
	"github.com/estatehub/auth-service/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.Secure())
	e.Use(echoprometheus.NewMiddleware("auth"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	codec := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, codec, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(authService)
	profileHandler := handler.NewProfileHandler()

	authGate := middleware.Auth(authService)
	limiter := redisstore.NewFixedWindowLimiter(rdb)
	authRate := middleware.RateLimit(limiter, "auth", cfg.RateLimit.AuthPerMinute, time.Minute, log)
	searchRate := middleware.RateLimit(limiter, "search", cfg.RateLimit.SearchPerMinute, time.Minute, log)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login, authRate)
	e.POST("/auth/register", authHandler.Register, authRate)

	// --- Admin routes ---
	e.PUT("/admin/update-role", adminHandler.UpdateRole, authGate, middleware.RBAC(audit, domain.RoleAdmin))
	e.GET("/admin", adminHandler.Dashboard, authGate, middleware.RBAC(audit, domain.RoleAdmin))

	// --- Role-gated application routes ---
	e.POST("/api/search", profileHandler.Search,
		authGate, middleware.RBAC(audit, domain.RoleAdmin, domain.RoleManager, domain.RoleAgent), searchRate)
	e.GET("/profile", profileHandler.Profile,
		authGate, middleware.RBAC(audit, domain.RoleAdmin, domain.RoleManager, domain.RoleAgent, domain.RoleUser))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
