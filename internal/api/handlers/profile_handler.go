package handlers

import (
	"errors"

	"ecotrack/internal/dto"
	"ecotrack/internal/models"
	"ecotrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	logger         *zap.Logger
}

func NewProfileHandler(profileService *service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// GetProfile godoc
// @Summary Get the current user's profile
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	user, err := h.profileService.GetProfile(c.UserContext(), userID)
	if err != nil {
		return h.profileError(c, err)
	}
	return c.JSON(toProfileResponse(user))
}

// UpdateProfile godoc
// @Summary Replace the current user's profile preferences
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile"
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/profile [put]
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateProfileRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	user, err := h.profileService.UpdateProfile(c.UserContext(), userID, &req)
	if err != nil {
		return h.profileError(c, err)
	}
	return c.JSON(toProfileResponse(user))
}

// RecordFootprint godoc
// @Summary Record a footprint snapshot
// @Description Stores yearly emissions in tons CO2. The total defaults to the sum of the components.
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.RecordFootprintRequest true "Footprint"
// @Security Bearer
// @Success 201 {object} dto.FootprintResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/footprints [post]
func (h *ProfileHandler) RecordFootprint(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.RecordFootprintRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	fp, err := h.profileService.RecordFootprint(c.UserContext(), userID, &req)
	if err != nil {
		h.logger.Error("Failed to record footprint", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record footprint",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(toFootprintResponse(fp))
}

// LatestFootprint godoc
// @Summary Get the latest footprint snapshot
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.FootprintResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/footprints/latest [get]
func (h *ProfileHandler) LatestFootprint(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	fp, err := h.profileService.LatestFootprint(c.UserContext(), userID)
	if errors.Is(err, service.ErrFootprintNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No footprint recorded",
		})
	}
	if err != nil {
		h.logger.Error("Failed to load footprint", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load footprint",
		})
	}
	return c.JSON(toFootprintResponse(fp))
}

func (h *ProfileHandler) profileError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	h.logger.Error("Profile request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Profile request failed",
	})
}

func toProfileResponse(user *models.User) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		Email:       user.Email,
		Location:    user.Location,
		Lifestyle:   user.Lifestyle,
		Preferences: user.Preferences,
		Budget:      user.Budget,
	}
}

func toFootprintResponse(fp *models.Footprint) dto.FootprintResponse {
	return dto.FootprintResponse{
		ID:             fp.ID.String(),
		TotalEmissions: fp.TotalEmissions,
		Transportation: fp.Transportation,
		Energy:         fp.Energy,
		Food:           fp.Food,
		Waste:          fp.Waste,
		CreatedAt:      formatTime(fp.CreatedAt),
	}
}
