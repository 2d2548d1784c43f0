package handlers

import (
	"strings"
)

var allowedGenders = map[string]struct{}{
	"male":              {},
	"female":            {},
	"other":             {},
	"prefer_not_to_say": {},
}

var allowedGoals = map[string]struct{}{
	"weight_loss":     {},
	"muscle_gain":     {},
	"strength":        {},
	"tone":            {},
	"recomposition":   {},
	"endurance":       {},
	"general_fitness": {},
}

var allowedExperienceLevels = map[string]struct{}{
	"beginner":     {},
	"intermediate": {},
	"advanced":     {},
}

var allowedActivityLevels = map[string]struct{}{
	"sedentary":   {},
	"light":       {},
	"moderate":    {},
	"active":      {},
	"very_active": {},
}

func validateUserOnboardingRequest(req userOnboardingRequest) string {
	if strings.TrimSpace(req.FullName) == "" {
		return "full_name is required"
	}
	if req.Age <= 0 {
		return "age must be greater than 0"
	}
	if err := validateGender(req.Gender); err != "" {
		return err
	}
	if req.HeightCM <= 0 {
		return "height_cm must be greater than 0"
	}
	if req.WeightKG <= 0 {
		return "weight_kg must be greater than 0"
	}
	if err := validateGoal(req.Goal); err != "" {
		return err
	}
	if err := validateExperienceLevel(req.ExperienceLevel); err != "" {
		return err
	}
	if err := validateActivityLevel(req.ActivityLevel); err != "" {
		return err
	}
	for _, item := range req.Equipment {
		if strings.TrimSpace(item) == "" {
			return "equipment must not contain empty values"
		}
	}
	return ""
}

func validateUserProfileUpdateRequest(req updateUserProfileRequest) string {
	if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
		return "full_name must not be empty"
	}
	if req.Age != nil && *req.Age <= 0 {
		return "age must be greater than 0"
	}
	if req.Gender != nil {
		if err := validateGender(*req.Gender); err != "" {
			return err
		}
	}
	if req.HeightCM != nil && *req.HeightCM <= 0 {
		return "height_cm must be greater than 0"
	}
	if req.WeightKG != nil && *req.WeightKG <= 0 {
		return "weight_kg must be greater than 0"
	}
	if req.Goal != nil {
		if err := validateGoal(*req.Goal); err != "" {
			return err
		}
	}
	if req.ExperienceLevel != nil {
		if err := validateExperienceLevel(*req.ExperienceLevel); err != "" {
			return err
		}
	}
	if req.ActivityLevel != nil {
		if err := validateActivityLevel(*req.ActivityLevel); err != "" {
			return err
		}
	}
	if req.Equipment != nil {
		for _, item := range *req.Equipment {
			if strings.TrimSpace(item) == "" {
				return "equipment must not contain empty values"
			}
		}
	}
	return ""
}

func validateGender(gender string) string {
	if _, ok := allowedGenders[strings.TrimSpace(gender)]; !ok {
		return "gender must be one of: male, female, other, prefer_not_to_say"
	}
	return ""
}

func validateGoal(goal string) string {
	if _, ok := allowedGoals[strings.TrimSpace(goal)]; !ok {
		return "goal must be one of: weight_loss, muscle_gain, strength, tone, recomposition, endurance, general_fitness"
	}
	return ""
}

func validateExperienceLevel(level string) string {
	if _, ok := allowedExperienceLevels[strings.TrimSpace(level)]; !ok {
		return "experience_level must be one of: beginner, intermediate, advanced"
	}
	return ""
}

func validateActivityLevel(level string) string {
	if _, ok := allowedActivityLevels[strings.TrimSpace(level)]; !ok {
		return "activity_level must be one of: sedentary, light, moderate, active, very_active"
	}
	return ""
}
