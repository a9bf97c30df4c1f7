package service

import (
	"context"

	"ecotrack/internal/models"
	"ecotrack/pkg/metrics"

	"go.uber.org/zap"
)

type PredictionInput struct {
	MonthlyEmissions []float64
	Activities       []string
	Seasonal         bool
}

type BehaviorInput struct {
	DailyActivities []models.DailyActivity
	Patterns        []string
	Goals           []string
}

// InsightService produces transient predictions and behavior analyses.
// Nothing it returns is persisted.
type InsightService struct {
	runner *taskRunner
	logger *zap.Logger
}

func NewInsightService(generator Generator, m *metrics.Metrics, logger *zap.Logger) *InsightService {
	return &InsightService{
		runner: &taskRunner{generator: generator, metrics: m, logger: logger},
		logger: logger,
	}
}

func (s *InsightService) PredictEmissions(ctx context.Context, input PredictionInput) Result[*models.PredictionResult] {
	return runTask(ctx, s.runner, TaskPrediction, BuildPredictionPrompt(input),
		NormalizePrediction,
		func() *models.PredictionResult { return FallbackPrediction(input.MonthlyEmissions) },
		zap.Int("months", len(input.MonthlyEmissions)),
	)
}

func (s *InsightService) AnalyzeBehavior(ctx context.Context, input BehaviorInput) Result[*models.BehaviorAnalysis] {
	return runTask(ctx, s.runner, TaskBehavior, BuildBehaviorPrompt(input),
		NormalizeBehavior,
		FallbackBehavior,
		zap.Int("days", len(input.DailyActivities)),
	)
}
