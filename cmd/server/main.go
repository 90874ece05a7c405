package main

import (
	"context"
	"log"

	"github.com/tregobbi/backoffice-service/internal/config"
	"github.com/tregobbi/backoffice-service/internal/database"
	"github.com/tregobbi/backoffice-service/internal/handler"
	"github.com/tregobbi/backoffice-service/internal/logging"
	"github.com/tregobbi/backoffice-service/internal/middleware"
	"github.com/tregobbi/backoffice-service/internal/repository"
	"github.com/tregobbi/backoffice-service/internal/server"
	"github.com/tregobbi/backoffice-service/internal/service"
	"github.com/tregobbi/backoffice-service/internal/validation"
)

// @title Back-Office Service API
// @version 1.0
// @description Cash closure reconciliation, period statistics and cellar inventory for the restaurant back office.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel)

	if err := validation.RegisterCustomValidations(); err != nil {
		logger.WithError(err).Fatal("Failed to register request validations")
	}

	// Connect to the database
	ctx := context.Background()
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	// Initialize repositories
	closureRepo := repository.NewPostgresClosureRepository(db.GetPool())
	wineRepo := repository.NewPostgresWineRepository(db.GetPool())
	userRepo := repository.NewPostgresUserRepository(db.GetPool())

	// Initialize services
	closureService := service.NewClosureService(closureRepo, logger)
	wineService := service.NewWineService(wineRepo)
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:             userRepo,
		JWTSecret:            cfg.JWTSecret,
		JWTAccessExpiration:  cfg.JWTAccessExpiration,
		JWTRefreshExpiration: cfg.JWTRefreshExpiration,
	})

	// Initialize handlers
	closureHandler := handler.NewClosureHandler(closureService, logger)
	statsHandler := handler.NewStatsHandler(closureService, logger)
	wineHandler := handler.NewWineHandler(wineService, logger)
	authHandler := handler.NewAuthHandler(authService, logger)

	// Create and configure server
	appServer := server.NewServer(cfg, logger)

	authMiddleware := middleware.AuthMiddleware(authService)
	adminMiddleware := middleware.RequireRole("admin")
	router := appServer.GetRouter()
	authHandler.RegisterRoutes(router, authMiddleware)
	closureHandler.RegisterRoutes(router, authMiddleware, adminMiddleware)
	statsHandler.RegisterRoutes(router, authMiddleware)
	wineHandler.RegisterRoutes(router, authMiddleware, adminMiddleware)

	// Start server (blocking call)
	if err := appServer.Start(); err != nil {
		logger.WithError(err).Fatal("Server error")
	}
}
