package main

import (
	"context"
	"errors"
	"log"
	"time"

	"ecotrack/internal/models"
	"ecotrack/internal/repository"
	"ecotrack/pkg/auth"
	"ecotrack/pkg/config"
	"ecotrack/pkg/logger"
	"ecotrack/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@ecotrack.local"
	demoPassword = "demo-password"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Starting database seeding...")

	if err := postgres.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to apply schema", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db, appLogger)
	footprintRepo := repository.NewFootprintRepository(db, appLogger)

	user, err := seedDemoUser(ctx, userRepo, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to seed demo user", zap.Error(err))
	}

	if err := seedFootprint(ctx, footprintRepo, user.ID, appLogger); err != nil {
		appLogger.Fatal("Failed to seed footprint", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!",
		zap.String("email", demoEmail),
		zap.String("user_id", user.ID.String()),
	)
}

// seedDemoUser is idempotent: an existing demo user is returned unchanged.
func seedDemoUser(ctx context.Context, repo *repository.UserRepository, logger *zap.Logger) (*models.User, error) {
	existing, err := repo.GetByEmail(ctx, demoEmail)
	if err == nil {
		logger.Info("Demo user already exists, skipping")
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}

	budget := 500.0
	now := time.Now()
	user := &models.User{
		ID:          uuid.New(),
		Username:    "demo",
		Email:       demoEmail,
		Password:    hashed,
		Location:    "Hamburg, Germany",
		Lifestyle:   []string{"urban", "commutes by car", "works from home twice a week"},
		Preferences: []string{"renewable energy", "plant-based meals"},
		Budget:      &budget,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Demo user created")
	return user, nil
}

func seedFootprint(ctx context.Context, repo *repository.FootprintRepository, userID uuid.UUID, logger *zap.Logger) error {
	if _, err := repo.FindLatestFootprint(ctx, userID); err == nil {
		logger.Info("Demo footprint already exists, skipping")
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	fp := &models.Footprint{
		ID:             uuid.New(),
		UserID:         userID,
		Transportation: 3.1,
		Energy:         2.4,
		Food:           1.9,
		Waste:          0.4,
		CreatedAt:      time.Now(),
	}
	fp.TotalEmissions = fp.ComponentSum()

	if err := repo.Create(ctx, fp); err != nil {
		return err
	}
	logger.Info("Demo footprint created", zap.Float64("total_emissions", fp.TotalEmissions))
	return nil
}
