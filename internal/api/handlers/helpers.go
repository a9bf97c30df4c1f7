package handlers

import (
	"time"

	"ecotrack/internal/dto"
	"ecotrack/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}

// parseBody decodes and validates a JSON body. An empty body leaves req at
// its zero value. On failure the 400 response has already been written and
// the returned bool is false.
func parseBody(c *fiber.Ctx, req any) (bool, error) {
	if len(c.Body()) == 0 {
		return validated(c, req)
	}
	if err := c.BodyParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	return validated(c, req)
}

func validated(c *fiber.Ctx, req any) (bool, error) {
	if err := dto.Validate(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return true, nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
