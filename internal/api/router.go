package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adventureworks/catalog-api/internal/api/handler"
	"github.com/adventureworks/catalog-api/internal/api/middleware"
	"github.com/adventureworks/catalog-api/internal/core/ports"
	"github.com/adventureworks/catalog-api/internal/core/service"
	"github.com/adventureworks/catalog-api/internal/infrastructure/db/postgres"
	rediscache "github.com/adventureworks/catalog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Gating policy: every /products route, reads included, requires a bearer
// token. Registration, login, health probes and metrics stay open.
func NewRouter(db *sql.DB, rdb *redis.Client, mdb *mongo.Database, audit ports.AuditSink, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)

	var cache ports.ProductCache
	if rdb != nil {
		cache = rediscache.NewProductCache(rdb, 0, log)
	}

	authService := service.NewAuthService(userRepo, jwtSecret, tokenTTL)
	productService := service.NewProductService(productRepo, cache, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/users", authHandler.Register)
	e.POST("/token", authHandler.Login)
	e.GET("/users/me", authHandler.Me, authMiddleware)

	// --- Product routes ---
	products := e.Group("/products", authMiddleware)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb, mdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
