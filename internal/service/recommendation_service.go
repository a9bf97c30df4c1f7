package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ecotrack/internal/models"
	"ecotrack/internal/repository"
	"ecotrack/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileRepository interface {
	FindUserWithPreferences(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

type FootprintReader interface {
	FindLatestFootprint(ctx context.Context, userID uuid.UUID) (*models.Footprint, error)
}

type RecommendationStore interface {
	Create(ctx context.Context, rec *models.Recommendation) error
	List(ctx context.Context, userID uuid.UUID, filter models.RecommendationFilter) ([]*models.Recommendation, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, update models.RecommendationUpdate) (*models.Recommendation, error)
}

// ProfileOverrides are request-supplied profile values. Stored values win
// when both are present.
type ProfileOverrides struct {
	CarbonFootprint *float64
	Location        string
	Lifestyle       []string
	Preferences     []string
	Budget          *float64
}

type RecommendationService struct {
	users      ProfileRepository
	footprints FootprintReader
	recRepo    RecommendationStore
	runner     *taskRunner
	logger     *zap.Logger
	now        func() time.Time
}

func NewRecommendationService(
	generator Generator,
	users ProfileRepository,
	footprints FootprintReader,
	recRepo RecommendationStore,
	m *metrics.Metrics,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		users:      users,
		footprints: footprints,
		recRepo:    recRepo,
		runner:     &taskRunner{generator: generator, metrics: m, logger: logger},
		logger:     logger,
		now:        time.Now,
	}
}

// GenerateRecommendations resolves the user's profile, asks the generative
// backend for recommendations (falling back to the fixed template on any
// generation failure) and saves each one in turn.
//
// Saves are sequential and independent. If one fails, the error is returned
// together with the records already saved; those are not rolled back.
func (s *RecommendationService) GenerateRecommendations(
	ctx context.Context,
	userID uuid.UUID,
	overrides ProfileOverrides,
) (Result[[]*models.Recommendation], error) {
	profile, err := s.resolveProfile(ctx, userID, overrides)
	if err != nil {
		return Result[[]*models.Recommendation]{}, err
	}

	result := runTask(ctx, s.runner, TaskRecommendation, BuildRecommendationPrompt(profile),
		NormalizeRecommendations,
		func() []*models.Recommendation { return FallbackRecommendations(userID) },
		zap.String("user_id", userID.String()),
	)

	drafts := result.Value
	result.Value = make([]*models.Recommendation, 0, len(drafts))
	for i, draft := range drafts {
		rec, err := s.create(ctx, userID, draft)
		if err != nil {
			s.logger.Error("Failed to save recommendation",
				zap.String("user_id", userID.String()),
				zap.Int("index", i),
				zap.Int("saved", len(result.Value)),
				zap.Error(err),
			)
			return result, fmt.Errorf("failed to save recommendation %d of %d: %w", i+1, len(drafts), err)
		}
		result.Value = append(result.Value, rec)
	}

	s.logger.Info("Recommendations generated",
		zap.String("user_id", userID.String()),
		zap.String("source", string(result.Source)),
		zap.Int("count", len(result.Value)),
	)
	return result, nil
}

func (s *RecommendationService) ListRecommendations(
	ctx context.Context,
	userID uuid.UUID,
	filter models.RecommendationFilter,
) ([]*models.Recommendation, error) {
	recs, err := s.recRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	return recs, nil
}

// ImplementRecommendation marks the user's recommendation as implemented.
// Dismissed recommendations may still be implemented.
func (s *RecommendationService) ImplementRecommendation(
	ctx context.Context,
	userID, id uuid.UUID,
	notes *string,
) (*models.Recommendation, error) {
	implemented := true
	update := models.RecommendationUpdate{Implemented: &implemented, UpdatedAt: s.now()}
	if notes != nil && strings.TrimSpace(*notes) != "" {
		trimmed := strings.TrimSpace(*notes)
		update.ImplementationNotes = &trimmed
	}
	return s.transition(ctx, userID, id, update)
}

// DismissRecommendation marks the user's recommendation as dismissed.
// Repeating it is harmless.
func (s *RecommendationService) DismissRecommendation(ctx context.Context, userID, id uuid.UUID) (*models.Recommendation, error) {
	dismissed := true
	return s.transition(ctx, userID, id, models.RecommendationUpdate{Dismissed: &dismissed, UpdatedAt: s.now()})
}

func (s *RecommendationService) transition(
	ctx context.Context,
	userID, id uuid.UUID,
	update models.RecommendationUpdate,
) (*models.Recommendation, error) {
	rec, err := s.recRepo.UpdateStatus(ctx, userID, id, update)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrRecommendationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update recommendation: %w", err)
	}
	return rec, nil
}

// create assigns identity and timestamps and enforces field defaults before
// saving.
func (s *RecommendationService) create(ctx context.Context, userID uuid.UUID, draft *models.Recommendation) (*models.Recommendation, error) {
	rec := *draft
	applyRecommendationDefaults(&rec)

	now := s.now()
	rec.ID = uuid.New()
	rec.UserID = userID
	rec.Implemented = false
	rec.Dismissed = false
	rec.ImplementationNotes = nil
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if err := s.recRepo.Create(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *RecommendationService) resolveProfile(ctx context.Context, userID uuid.UUID, overrides ProfileOverrides) (*models.UserProfile, error) {
	user, err := s.users.FindUserWithPreferences(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}

	footprint, err := s.footprints.FindLatestFootprint(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to load footprint: %w", err)
	}

	return mergeProfile(user, footprint, overrides), nil
}

func mergeProfile(user *models.User, footprint *models.Footprint, overrides ProfileOverrides) *models.UserProfile {
	profile := &models.UserProfile{
		CarbonFootprint: overrides.CarbonFootprint,
		Location:        overrides.Location,
		Lifestyle:       overrides.Lifestyle,
		Preferences:     overrides.Preferences,
		Budget:          overrides.Budget,
	}

	if footprint != nil {
		total := footprint.TotalEmissions
		profile.CarbonFootprint = &total
	}
	if user == nil {
		return profile
	}
	if strings.TrimSpace(user.Location) != "" {
		profile.Location = user.Location
	}
	if len(user.Lifestyle) > 0 {
		profile.Lifestyle = user.Lifestyle
	}
	if len(user.Preferences) > 0 {
		profile.Preferences = user.Preferences
	}
	if user.Budget != nil {
		profile.Budget = user.Budget
	}
	return profile
}
