package handlers

import (
	"errors"
	"strconv"

	"ecotrack/internal/dto"
	"ecotrack/internal/models"
	"ecotrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RecommendationHandler struct {
	recService *service.RecommendationService
	logger     *zap.Logger
}

func NewRecommendationHandler(recService *service.RecommendationService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recService: recService,
		logger:     logger,
	}
}

// GenerateRecommendations godoc
// @Summary Generate personalized recommendations
// @Description Generates and stores carbon reduction recommendations. The source field tells whether they were generated or come from the fixed fallback.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.GenerateRecommendationsRequest false "Profile overrides"
// @Security Bearer
// @Success 201 {object} dto.GenerateRecommendationsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/recommendations/generate [post]
func (h *RecommendationHandler) GenerateRecommendations(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.GenerateRecommendationsRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	result, err := h.recService.GenerateRecommendations(c.UserContext(), userID, service.ProfileOverrides{
		CarbonFootprint: req.CarbonFootprint,
		Location:        req.Location,
		Lifestyle:       req.Lifestyle,
		Preferences:     req.Preferences,
		Budget:          req.Budget,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		h.logger.Error("Failed to generate recommendations",
			zap.String("user_id", userID.String()),
			zap.Int("saved", len(result.Value)),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save recommendations",
			"saved": toRecommendationResponses(result.Value),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.GenerateRecommendationsResponse{
		Source:          string(result.Source),
		Recommendations: toRecommendationResponses(result.Value),
	})
}

// ListRecommendations godoc
// @Summary List recommendations
// @Description Lists the user's recommendations, newest first. Filters are combined with AND.
// @Tags recommendations
// @Produce json
// @Param type query string false "reduction, purchase, optimization or behavioral"
// @Param implemented query bool false "Filter by implemented flag"
// @Param dismissed query bool false "Filter by dismissed flag"
// @Security Bearer
// @Success 200 {array} dto.RecommendationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/recommendations [get]
func (h *RecommendationHandler) ListRecommendations(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	filter, err := parseRecommendationFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	recs, err := h.recService.ListRecommendations(c.UserContext(), userID, filter)
	if err != nil {
		h.logger.Error("Failed to list recommendations", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list recommendations",
		})
	}

	return c.JSON(toRecommendationResponses(recs))
}

// ImplementRecommendation godoc
// @Summary Mark a recommendation as implemented
// @Tags recommendations
// @Accept json
// @Produce json
// @Param id path string true "Recommendation ID"
// @Param request body dto.ImplementRecommendationRequest false "Implementation notes"
// @Security Bearer
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/recommendations/{id}/implement [post]
func (h *RecommendationHandler) ImplementRecommendation(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid recommendation ID",
		})
	}

	var req dto.ImplementRecommendationRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	rec, err := h.recService.ImplementRecommendation(c.UserContext(), userID, id, req.Notes)
	return h.respondTransition(c, rec, err)
}

// DismissRecommendation godoc
// @Summary Dismiss a recommendation
// @Tags recommendations
// @Produce json
// @Param id path string true "Recommendation ID"
// @Security Bearer
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/recommendations/{id}/dismiss [post]
func (h *RecommendationHandler) DismissRecommendation(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid recommendation ID",
		})
	}

	rec, err := h.recService.DismissRecommendation(c.UserContext(), userID, id)
	return h.respondTransition(c, rec, err)
}

func (h *RecommendationHandler) respondTransition(c *fiber.Ctx, rec *models.Recommendation, err error) error {
	if errors.Is(err, service.ErrRecommendationNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Recommendation not found",
		})
	}
	if err != nil {
		h.logger.Error("Failed to update recommendation", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update recommendation",
		})
	}
	return c.JSON(toRecommendationResponse(rec))
}

func parseRecommendationFilter(c *fiber.Ctx) (models.RecommendationFilter, error) {
	var filter models.RecommendationFilter

	if v := c.Query("type"); v != "" {
		recType := models.RecommendationType(v)
		if !recType.Valid() {
			return filter, errors.New("invalid recommendation type")
		}
		filter.Type = &recType
	}

	flags := []struct {
		key string
		dst **bool
	}{
		{"implemented", &filter.Implemented},
		{"dismissed", &filter.Dismissed},
	}
	for _, f := range flags {
		v := c.Query(f.key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filter, errors.New("invalid " + f.key + " filter")
		}
		*f.dst = &b
	}

	return filter, nil
}

func toRecommendationResponse(rec *models.Recommendation) dto.RecommendationResponse {
	return dto.RecommendationResponse{
		ID:                  rec.ID.String(),
		Type:                string(rec.Type),
		Title:               rec.Title,
		Description:         rec.Description,
		Impact:              rec.Impact,
		Confidence:          rec.Confidence,
		Category:            rec.Category,
		RewardPotential:     rec.RewardPotential,
		ActionSteps:         rec.ActionSteps,
		EstimatedCost:       rec.EstimatedCost,
		Timeframe:           rec.Timeframe,
		Priority:            string(rec.Priority),
		Implemented:         rec.Implemented,
		Dismissed:           rec.Dismissed,
		ImplementationNotes: rec.ImplementationNotes,
		CreatedAt:           formatTime(rec.CreatedAt),
		UpdatedAt:           formatTime(rec.UpdatedAt),
	}
}

func toRecommendationResponses(recs []*models.Recommendation) []dto.RecommendationResponse {
	out := make([]dto.RecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toRecommendationResponse(rec))
	}
	return out
}
