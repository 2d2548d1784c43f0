package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/marcela981/Somos-Server/internal/models"
	"github.com/marcela981/Somos-Server/internal/services"
)

type analyticsApplicationService interface {
	ProgressSummary(ctx context.Context, userID int64, timeRange models.TimeRange) (*models.ProgressSummary, error)
	CalorieGoal(ctx context.Context, userID int64) (*models.CalorieGoal, error)
}

type AnalyticsHandler struct {
	analyticsService analyticsApplicationService
}

func NewAnalyticsHandler(analyticsService analyticsApplicationService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) GetProgressSummary(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	timeRange, ok := models.ParseTimeRange(c.Query("range"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "range must be one of: 7_days, 30_days, 90_days, all"})
	}

	summary, err := h.analyticsService.ProgressSummary(c.Context(), userID, timeRange)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute progress summary"})
	}

	return c.JSON(summary)
}

func (h *AnalyticsHandler) GetCalorieGoal(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	goal, err := h.analyticsService.CalorieGoal(c.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		case errors.Is(err, services.ErrIncompleteProfile):
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "Profile is missing weight, height, or age"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute calorie goal"})
		}
	}

	return c.JSON(goal)
}
