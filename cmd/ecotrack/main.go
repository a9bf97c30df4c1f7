package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ecotrack/internal/api"
	"ecotrack/internal/api/handlers"
	"ecotrack/internal/repository"
	"ecotrack/internal/service"
	"ecotrack/pkg/auth"
	"ecotrack/pkg/config"
	"ecotrack/pkg/logger"
	"ecotrack/pkg/metrics"
	"ecotrack/pkg/postgres"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// @title EcoTrack API
// @version 1.0
// @description Personalized carbon reduction recommendations, emission predictions and behavior analysis

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting EcoTrack service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to apply schema", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, logger.Named("users"))
	footprintRepo := repository.NewFootprintRepository(db, logger.Named("footprints"))
	recRepo := repository.NewRecommendationRepository(db, logger.Named("recommendations"))

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)

	llmService, err := service.NewLLMService(&cfg.LLM, appMetrics, logger.Named("llm"))
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer llmService.Close()

	pipelineLogger := logger.Named("pipeline")
	recService := service.NewRecommendationService(llmService, userRepo, footprintRepo, recRepo, appMetrics, pipelineLogger)
	insightService := service.NewInsightService(llmService, appMetrics, pipelineLogger)
	profileService := service.NewProfileService(userRepo, footprintRepo, appLogger)

	// Setup router
	app := api.SetupRouter(api.Handlers{
		Auth:            handlers.NewAuthHandler(authService, appLogger),
		Profile:         handlers.NewProfileHandler(profileService, appLogger),
		Recommendations: handlers.NewRecommendationHandler(recService, appLogger),
		Insights:        handlers.NewInsightHandler(insightService, appLogger),
	}, jwtManager, appMetrics, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.ShutdownWithTimeout(cfg.Server.WriteTimeout); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
