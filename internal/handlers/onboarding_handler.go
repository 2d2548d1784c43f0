package handlers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/marcela981/Somos-Server/internal/models"
	"github.com/marcela981/Somos-Server/internal/repository"
)

type userOnboardingProfileStore interface {
	UpdateOnboarding(ctx context.Context, userID int64, req repository.UserOnboardingInput) (*models.UserProfile, error)
}

type OnboardingHandler struct {
	userProfileRepo userOnboardingProfileStore
}

func NewOnboardingHandler(userProfileRepo userOnboardingProfileStore) *OnboardingHandler {
	return &OnboardingHandler{userProfileRepo: userProfileRepo}
}

type userOnboardingRequest struct {
	FullName        string   `json:"full_name"`
	Age             int      `json:"age"`
	Gender          string   `json:"gender"`
	HeightCM        float64  `json:"height_cm"`
	WeightKG        float64  `json:"weight_kg"`
	Goal            string   `json:"goal"`
	ExperienceLevel string   `json:"experience_level"`
	Equipment       []string `json:"equipment"`
	ActivityLevel   string   `json:"activity_level"`
}

func (h *OnboardingHandler) UserOnboarding(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req userOnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateUserOnboardingRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	if req.Equipment == nil {
		req.Equipment = []string{}
	}

	profile, err := h.userProfileRepo.UpdateOnboarding(c.Context(), userID, repository.UserOnboardingInput{
		FullName:        req.FullName,
		Age:             req.Age,
		Gender:          req.Gender,
		HeightCM:        req.HeightCM,
		WeightKG:        req.WeightKG,
		Goal:            req.Goal,
		ExperienceLevel: req.ExperienceLevel,
		Equipment:       req.Equipment,
		ActivityLevel:   req.ActivityLevel,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{
		"profile":             profile,
		"onboarding_complete": profile.OnboardingComplete,
	})
}

func parseUserID(c *fiber.Ctx) (int64, error) {
	userIDValue := c.Locals("user_id")
	userIDStr, ok := userIDValue.(string)
	if !ok {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(userIDStr, 10, 64)
}
