package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/marcela981/Somos-Server/internal/models"
	"github.com/marcela981/Somos-Server/internal/repository"
)

type weightLogStore interface {
	Create(ctx context.Context, input repository.CreateWeightLogInput) (*models.WeightLog, error)
	ListByUser(ctx context.Context, userID int64, filter repository.LogListFilter) ([]models.WeightLog, int, error)
}

type workoutLogStore interface {
	Create(ctx context.Context, input repository.CreateWorkoutLogInput) (*models.WorkoutLog, error)
	ListByUser(ctx context.Context, userID int64, filter repository.LogListFilter) ([]models.WorkoutLog, int, error)
}

type nutritionLogStore interface {
	Create(ctx context.Context, input repository.CreateNutritionLogInput) (*models.NutritionLog, error)
	ListByUser(ctx context.Context, userID int64, filter repository.LogListFilter) ([]models.NutritionLog, int, error)
}

type LogsHandler struct {
	weightLogs    weightLogStore
	workoutLogs   workoutLogStore
	nutritionLogs nutritionLogStore
}

func NewLogsHandler(
	weightLogs weightLogStore,
	workoutLogs workoutLogStore,
	nutritionLogs nutritionLogStore,
) *LogsHandler {
	return &LogsHandler{
		weightLogs:    weightLogs,
		workoutLogs:   workoutLogs,
		nutritionLogs: nutritionLogs,
	}
}

type createWeightLogRequest struct {
	LoggedAt   string   `json:"logged_at"`
	WeightKG   float64  `json:"weight_kg"`
	BodyFatPct *float64 `json:"body_fat_pct"`
}

type createWorkoutLogRequest struct {
	LoggedAt        string   `json:"logged_at"`
	ExerciseName    string   `json:"exercise_name"`
	Sets            int      `json:"sets"`
	Reps            int      `json:"reps"`
	WeightLiftedKG  *float64 `json:"weight_lifted_kg"`
	DurationMinutes *int     `json:"duration_minutes"`
	Feedback        *string  `json:"feedback"`
}

type createNutritionLogRequest struct {
	LoggedAt string  `json:"logged_at"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	WaterML  float64 `json:"water_ml"`
}

func (h *LogsHandler) CreateWeightLog(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req createWeightLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	loggedAt, ok := parseLoggedAt(req.LoggedAt)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "logged_at must be an RFC3339 timestamp"})
	}
	if req.WeightKG <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "weight_kg must be greater than 0"})
	}
	if req.BodyFatPct != nil && (*req.BodyFatPct < 0 || *req.BodyFatPct > 100) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "body_fat_pct must be between 0 and 100"})
	}

	log, err := h.weightLogs.Create(c.Context(), repository.CreateWeightLogInput{
		UserID:     userID,
		LoggedAt:   loggedAt,
		WeightKG:   req.WeightKG,
		BodyFatPct: req.BodyFatPct,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create weight log"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"log": log})
}

func (h *LogsHandler) ListWeightLogs(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	filter, page, limit, rangeErr := parseLogListQuery(c)
	if rangeErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": rangeErr})
	}

	logs, total, err := h.weightLogs.ListByUser(c.Context(), userID, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch weight logs"})
	}

	return c.JSON(fiber.Map{
		"logs":       logs,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

func (h *LogsHandler) CreateWorkoutLog(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req createWorkoutLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	loggedAt, ok := parseLoggedAt(req.LoggedAt)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "logged_at must be an RFC3339 timestamp"})
	}
	if strings.TrimSpace(req.ExerciseName) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "exercise_name is required"})
	}
	if req.Sets <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "sets must be greater than 0"})
	}
	if req.Reps <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "reps must be greater than 0"})
	}
	if req.WeightLiftedKG != nil && *req.WeightLiftedKG < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "weight_lifted_kg must not be negative"})
	}
	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "duration_minutes must be greater than 0"})
	}

	log, err := h.workoutLogs.Create(c.Context(), repository.CreateWorkoutLogInput{
		UserID:          userID,
		LoggedAt:        loggedAt,
		ExerciseName:    strings.TrimSpace(req.ExerciseName),
		Sets:            req.Sets,
		Reps:            req.Reps,
		WeightLiftedKG:  req.WeightLiftedKG,
		DurationMinutes: req.DurationMinutes,
		Feedback:        req.Feedback,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create workout log"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"log": log})
}

func (h *LogsHandler) ListWorkoutLogs(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	filter, page, limit, rangeErr := parseLogListQuery(c)
	if rangeErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": rangeErr})
	}

	logs, total, err := h.workoutLogs.ListByUser(c.Context(), userID, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch workout logs"})
	}

	return c.JSON(fiber.Map{
		"logs":       logs,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

func (h *LogsHandler) CreateNutritionLog(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req createNutritionLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	loggedAt, ok := parseLoggedAt(req.LoggedAt)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "logged_at must be an RFC3339 timestamp"})
	}
	if req.Calories <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "calories must be greater than 0"})
	}
	if req.ProteinG < 0 || req.CarbsG < 0 || req.FatG < 0 || req.WaterML < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "macro values must not be negative"})
	}

	log, err := h.nutritionLogs.Create(c.Context(), repository.CreateNutritionLogInput{
		UserID:   userID,
		LoggedAt: loggedAt,
		Calories: req.Calories,
		ProteinG: req.ProteinG,
		CarbsG:   req.CarbsG,
		FatG:     req.FatG,
		WaterML:  req.WaterML,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create nutrition log"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"log": log})
}

func (h *LogsHandler) ListNutritionLogs(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	filter, page, limit, rangeErr := parseLogListQuery(c)
	if rangeErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": rangeErr})
	}

	logs, total, err := h.nutritionLogs.ListByUser(c.Context(), userID, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch nutrition logs"})
	}

	return c.JSON(fiber.Map{
		"logs":       logs,
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

// parseLoggedAt defaults to the current time when the field is omitted.
func parseLoggedAt(raw string) (time.Time, bool) {
	if strings.TrimSpace(raw) == "" {
		return time.Now().UTC(), true
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

func parseLogListQuery(c *fiber.Ctx) (repository.LogListFilter, int, int, string) {
	timeRange, ok := models.ParseTimeRange(c.Query("range"))
	if !ok {
		return repository.LogListFilter{}, 0, 0, "range must be one of: 7_days, 30_days, 90_days, all"
	}

	page, limit, offset := parsePageQuery(c)
	return repository.LogListFilter{
		Since:  timeRange.WindowStart(time.Now().UTC()),
		Limit:  limit,
		Offset: offset,
	}, page, limit, ""
}
