package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	portsrepo "github.com/kpdgayao/startup-finance-tools-sub000/internal/core/ports/repositories"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/services"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/handlers"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/middleware"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/platform/config"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/repositories/database/pgsql"
	"github.com/kpdgayao/startup-finance-tools-sub000/pkg/database"
)

// @title Startup Finance Tools API
// @version 1.0
// @description Cash flow and 36-month financial model projections for early-stage startups.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: middleware.ParseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	var repos *portsrepo.RepositoryProvider
	if cfg.ScenariosEnabled() {
		dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			logger.Error("Failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}

		provider := pgsql.NewRepositoryProvider(dbPool)
		repos = &provider
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(cfg, repos)

	var health portsrepo.HealthChecker
	if repos != nil {
		health = repos.Health
	}
	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, health); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.Bool("scenarios_enabled", serviceContainer.Scenario != nil))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
