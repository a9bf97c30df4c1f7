package handlers

import (
	"ecotrack/internal/dto"
	"ecotrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InsightHandler serves transient analyses. Results are never stored.
type InsightHandler struct {
	insightService *service.InsightService
	logger         *zap.Logger
}

func NewInsightHandler(insightService *service.InsightService, logger *zap.Logger) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
		logger:         logger,
	}
}

// PredictEmissions godoc
// @Summary Predict near-term emissions
// @Tags insights
// @Accept json
// @Produce json
// @Param request body dto.PredictEmissionsRequest true "Emission history"
// @Security Bearer
// @Success 200 {object} dto.PredictionResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/insights/predictions [post]
func (h *InsightHandler) PredictEmissions(c *fiber.Ctx) error {
	if _, err := getUserID(c); err != nil {
		return unauthorized(c)
	}

	var req dto.PredictEmissionsRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	result := h.insightService.PredictEmissions(c.UserContext(), service.PredictionInput{
		MonthlyEmissions: req.MonthlyEmissions,
		Activities:       req.Activities,
		Seasonal:         req.Seasonal,
	})

	return c.JSON(dto.PredictionResponse{
		Source:     string(result.Source),
		Prediction: result.Value,
	})
}

// AnalyzeBehavior godoc
// @Summary Analyze daily behavior
// @Tags insights
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeBehaviorRequest true "Activity log"
// @Security Bearer
// @Success 200 {object} dto.BehaviorResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/insights/behavior [post]
func (h *InsightHandler) AnalyzeBehavior(c *fiber.Ctx) error {
	if _, err := getUserID(c); err != nil {
		return unauthorized(c)
	}

	var req dto.AnalyzeBehaviorRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	result := h.insightService.AnalyzeBehavior(c.UserContext(), service.BehaviorInput{
		DailyActivities: req.DailyActivities,
		Patterns:        req.Patterns,
		Goals:           req.Goals,
	})

	return c.JSON(dto.BehaviorResponse{
		Source:   string(result.Source),
		Analysis: result.Value,
	})
}
