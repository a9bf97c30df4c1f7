package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecotrack/internal/dto"
	"ecotrack/internal/models"
	"ecotrack/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdatePreferences(ctx context.Context, user *models.User) error
}

type FootprintStore interface {
	FootprintReader
	Create(ctx context.Context, fp *models.Footprint) error
}

var ErrFootprintNotFound = errors.New("footprint not found")

// ProfileService manages the stored profile and footprint snapshots that
// recommendation prompts are built from.
type ProfileService struct {
	users      ProfileStore
	footprints FootprintStore
	logger     *zap.Logger
}

func NewProfileService(users ProfileStore, footprints FootprintStore, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		users:      users,
		footprints: footprints,
		logger:     logger,
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return user, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Location = req.Location
	user.Lifestyle = req.Lifestyle
	user.Preferences = req.Preferences
	user.Budget = req.Budget
	user.UpdatedAt = time.Now()

	if err := s.users.UpdatePreferences(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// RecordFootprint stores a snapshot. Without an explicit total, the total is
// the sum of the category components.
func (s *ProfileService) RecordFootprint(ctx context.Context, userID uuid.UUID, req *dto.RecordFootprintRequest) (*models.Footprint, error) {
	fp := &models.Footprint{
		ID:             uuid.New(),
		UserID:         userID,
		Transportation: req.Transportation,
		Energy:         req.Energy,
		Food:           req.Food,
		Waste:          req.Waste,
		CreatedAt:      time.Now(),
	}
	fp.TotalEmissions = fp.ComponentSum()
	if req.TotalEmissions != nil {
		fp.TotalEmissions = *req.TotalEmissions
	}

	if err := s.footprints.Create(ctx, fp); err != nil {
		return nil, fmt.Errorf("failed to save footprint: %w", err)
	}

	s.logger.Info("Footprint recorded",
		zap.String("user_id", userID.String()),
		zap.Float64("total_emissions", fp.TotalEmissions),
	)
	return fp, nil
}

func (s *ProfileService) LatestFootprint(ctx context.Context, userID uuid.UUID) (*models.Footprint, error) {
	fp, err := s.footprints.FindLatestFootprint(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrFootprintNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load footprint: %w", err)
	}
	return fp, nil
}
