package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowAdvisor/app/echo-server/router"
	"glowAdvisor/business/catalog"
	"glowAdvisor/business/recommend"
	userService "glowAdvisor/business/user"
	"glowAdvisor/internal/middleware"
	psqlRepo "glowAdvisor/internal/repository/postgres"
	redisRepo "glowAdvisor/internal/repository/redis"
	"glowAdvisor/internal/rest"
	"glowAdvisor/pkg/config"
	"glowAdvisor/pkg/database"
	redisdb "glowAdvisor/pkg/database/redis"
	"glowAdvisor/pkg/logger"
	"glowAdvisor/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Glow Advisor", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer redisdb.CloseRedisClient(redisClient)

	metrics.Init()

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	itemRepo := psqlRepo.NewItemRepository(db)
	consultRepo := psqlRepo.NewConsultationRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)
	catalogCache := redisRepo.NewCatalogCache(redisClient)

	// Init service
	userSvc := userService.NewUserService(userRepo, validate, tokenRepo)
	catalogSvc := catalog.NewCatalogService(itemRepo, catalogCache, time.Duration(cfg.Engine.CatalogCacheTTL)*time.Second)
	recommendSvc := recommend.NewRecommendService(catalogSvc, consultRepo, recommend.Options{
		MaxPerCategory: cfg.Engine.MaxPerCategory,
	})

	// Init handler
	userHandler := rest.NewUserHandler(userSvc)
	catalogHandler := rest.NewCatalogHandler(catalogSvc)
	consultationHandler := rest.NewConsultationHandler(recommendSvc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithRedis(userSvc)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly)
	router.SetupCatalogRoutes(api, catalogHandler, authRequired, adminOnly)
	router.SetupConsultationRoutes(api, consultationHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
