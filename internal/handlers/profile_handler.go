package handlers

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/marcela981/Somos-Server/internal/models"
	"github.com/marcela981/Somos-Server/internal/repository"
	"github.com/marcela981/Somos-Server/internal/services"
)

const maxAvatarSizeBytes = 5 * 1024 * 1024

type userProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error)
}

type ProfileHandler struct {
	profileService  *services.ProfileService
	userProfileRepo userProfileStore
	storageService  services.StorageService
}

func NewProfileHandler(
	profileService *services.ProfileService,
	userProfileRepo userProfileStore,
	storageService services.StorageService,
) *ProfileHandler {
	return &ProfileHandler{
		profileService:  profileService,
		userProfileRepo: userProfileRepo,
		storageService:  storageService,
	}
}

type updateUserProfileRequest struct {
	FullName        *string   `json:"full_name"`
	Age             *int      `json:"age"`
	Gender          *string   `json:"gender"`
	HeightCM        *float64  `json:"height_cm"`
	WeightKG        *float64  `json:"weight_kg"`
	Goal            *string   `json:"goal"`
	ExperienceLevel *string   `json:"experience_level"`
	Equipment       *[]string `json:"equipment"`
	ActivityLevel   *string   `json:"activity_level"`
}

func (h *ProfileHandler) GetUserProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	profile, err := h.userProfileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}

	return c.JSON(fiber.Map{
		"profile":             profile,
		"onboarding_complete": profile.OnboardingComplete,
	})
}

func (h *ProfileHandler) UpdateUserProfile(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req updateUserProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateUserProfileUpdateRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	profile, err := h.profileService.UpdateUserProfile(c.Context(), userID, repository.UpdateUserProfileInput{
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
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{
		"profile":             profile,
		"onboarding_complete": profile.OnboardingComplete,
	})
}

func (h *ProfileHandler) UploadAvatar(c *fiber.Ctx) error {
	if h.storageService == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage service is not configured"})
	}

	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar file is required"})
	}
	if fileHeader.Size <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar file is empty"})
	}
	if fileHeader.Size > maxAvatarSizeBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar file exceeds 5MB limit"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open avatar file"})
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar must be a jpg, jpeg, png, or webp file"})
	}

	filename := fmt.Sprintf("%d-%d%s", userID, time.Now().UnixNano(), ext)
	avatarURL, err := h.storageService.UploadFile(c.Context(), file, filename, "users/avatars")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload avatar"})
	}

	currentProfile, err := h.userProfileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profile"})
	}
	if currentProfile.AvatarURL != nil && *currentProfile.AvatarURL != "" && *currentProfile.AvatarURL != avatarURL {
		_ = h.storageService.DeleteFile(c.Context(), *currentProfile.AvatarURL)
	}

	profile, err := h.profileService.UpdateUserProfile(c.Context(), userID, repository.UpdateUserProfileInput{
		AvatarURL: &avatarURL,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{
		"avatar_url": avatarURL,
		"profile":    profile,
	})
}
