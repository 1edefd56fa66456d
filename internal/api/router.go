package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/minimarket/marketplace-api/internal/api/handler"
	"github.com/minimarket/marketplace-api/internal/api/middleware"
	"github.com/minimarket/marketplace-api/internal/core/domain"
	"github.com/minimarket/marketplace-api/internal/core/ports"
	"github.com/minimarket/marketplace-api/internal/core/service"
	"github.com/minimarket/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/minimarket/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/minimarket/marketplace-api/internal/infrastructure/db/redis"
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
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Login.MaxAttempts, cfg.Login.AttemptWindow)

	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, cfg.TokenTTL, log)
	verifier := service.NewTokenVerifier(userRepo, cfg.JWTSecret)
	adminService := service.NewAdminService(userRepo, audit, log)
	productService := service.NewProductService(productRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService)
	productHandler := handler.NewProductHandler(productService)

	authRequired := middleware.Authenticate(verifier)
	authOptional := middleware.OptionalAuthenticate(verifier)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Admin routes ---
	admin := e.Group("/admin", authRequired, adminOnly)
	admin.POST("/find", adminHandler.Find)
	admin.POST("/ban/:id", adminHandler.Ban)
	admin.POST("/unban/:id", adminHandler.Unban)

	// --- Product routes ---
	e.POST("/products", productHandler.Create, authRequired)
	e.GET("/products", productHandler.List, authOptional)
	e.GET("/products/mine", productHandler.ListMine, authRequired)
	e.GET("/products/:id", productHandler.Get, authOptional)
	e.PUT("/products/:id", productHandler.Update, authRequired)
	e.DELETE("/products/:id", productHandler.Delete, authRequired)
	e.PUT("/products/:id/approve", productHandler.Approve, authRequired, adminOnly)

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
