package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/marcela981/Somos-Server/internal/models"
	"github.com/marcela981/Somos-Server/internal/services"
)

type adviceApplicationService interface {
	GetAdvice(ctx context.Context, userID int64, intent models.AdvisoryIntent, adviceCtx services.AdviceContext) (*models.AdviceResponse, error)
	GetHistory(ctx context.Context, userID int64, limit, offset int) ([]models.AdvisorySuggestion, int, error)
}

type AdviceHandler struct {
	adviceService adviceApplicationService
}

func NewAdviceHandler(adviceService adviceApplicationService) *AdviceHandler {
	return &AdviceHandler{adviceService: adviceService}
}

type recommendationContext struct {
	TimeRange       string   `json:"time_range"`
	DurationMinutes int      `json:"duration_minutes"`
	Focus           string   `json:"focus"`
	Equipment       []string `json:"equipment"`
	CurrentWeightKG *float64 `json:"current_weight_kg"`
	TargetWeightKG  *float64 `json:"target_weight_kg"`
	ActivityLevel   string   `json:"activity_level"`
	StreakDays      int      `json:"streak_days"`
	LastSessionAt   string   `json:"last_session_at"`
}

type recommendationRequest struct {
	Type    string                 `json:"type"`
	Context *recommendationContext `json:"context"`
}

type workoutPlanRequest struct {
	DurationMinutes int      `json:"duration_minutes"`
	Focus           string   `json:"focus"`
	Equipment       []string `json:"equipment"`
}

type nutritionAdviceRequest struct {
	CurrentWeightKG *float64 `json:"current_weight_kg"`
	TargetWeightKG  *float64 `json:"target_weight_kg"`
	ActivityLevel   string   `json:"activity_level"`
}

type analyzeProgressRequest struct {
	TimeRange string `json:"time_range"`
}

// GetRecommendation is the generic advisory entry point; the intent arrives
// in the body and the context carries whichever parameters it needs.
func (h *AdviceHandler) GetRecommendation(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req recommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	intent, ok := models.ParseAdvisoryIntent(req.Type)
	if !ok {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "type must be one of: workout, nutrition, progress_analysis, motivation"})
	}

	adviceCtx := services.AdviceContext{}
	if req.Context != nil {
		timeRange, ok := models.ParseTimeRange(req.Context.TimeRange)
		if !ok {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "time_range must be one of: 7_days, 30_days, 90_days, all"})
		}
		adviceCtx.TimeRange = timeRange

		switch intent {
		case models.IntentWorkout:
			adviceCtx.Workout = &services.WorkoutParams{
				DurationMinutes: req.Context.DurationMinutes,
				Focus:           req.Context.Focus,
				Equipment:       req.Context.Equipment,
			}
		case models.IntentNutrition:
			adviceCtx.Nutrition = &services.NutritionParams{
				CurrentWeightKG: req.Context.CurrentWeightKG,
				TargetWeightKG:  req.Context.TargetWeightKG,
				ActivityLevel:   req.Context.ActivityLevel,
			}
		case models.IntentMotivation:
			adviceCtx.Motivation = &services.MotivationParams{
				StreakDays:    req.Context.StreakDays,
				LastSessionAt: req.Context.LastSessionAt,
			}
		}
	}

	response, err := h.adviceService.GetAdvice(c.Context(), userID, intent, adviceCtx)
	if err != nil {
		return mapAdviceError(c, err)
	}
	return c.JSON(response)
}

func (h *AdviceHandler) GetWorkoutPlan(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req workoutPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.DurationMinutes < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "duration_minutes must not be negative"})
	}

	response, err := h.adviceService.GetAdvice(c.Context(), userID, models.IntentWorkout, services.AdviceContext{
		Workout: &services.WorkoutParams{
			DurationMinutes: req.DurationMinutes,
			Focus:           req.Focus,
			Equipment:       req.Equipment,
		},
	})
	if err != nil {
		return mapAdviceError(c, err)
	}
	return c.JSON(response)
}

func (h *AdviceHandler) GetNutritionAdvice(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req nutritionAdviceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.CurrentWeightKG != nil && *req.CurrentWeightKG <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "current_weight_kg must be greater than 0"})
	}
	if req.TargetWeightKG != nil && *req.TargetWeightKG <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "target_weight_kg must be greater than 0"})
	}

	response, err := h.adviceService.GetAdvice(c.Context(), userID, models.IntentNutrition, services.AdviceContext{
		Nutrition: &services.NutritionParams{
			CurrentWeightKG: req.CurrentWeightKG,
			TargetWeightKG:  req.TargetWeightKG,
			ActivityLevel:   req.ActivityLevel,
		},
	})
	if err != nil {
		return mapAdviceError(c, err)
	}
	return c.JSON(response)
}

func (h *AdviceHandler) AnalyzeProgress(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req analyzeProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	timeRange, ok := models.ParseTimeRange(req.TimeRange)
	if !ok {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "time_range must be one of: 7_days, 30_days, 90_days, all"})
	}

	response, err := h.adviceService.GetAdvice(c.Context(), userID, models.IntentProgressAnalysis, services.AdviceContext{
		TimeRange: timeRange,
	})
	if err != nil {
		return mapAdviceError(c, err)
	}
	return c.JSON(response)
}

func (h *AdviceHandler) GetHistory(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	page, limit, offset := parsePageQuery(c)

	suggestions, total, err := h.adviceService.GetHistory(c.Context(), userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch history"})
	}

	return c.JSON(fiber.Map{
		"suggestions": suggestions,
		"pagination":  buildPaginationMeta(page, limit, total),
	})
}

func mapAdviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidIntent):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid recommendation type"})
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate recommendation"})
	}
}
