package services

import (
	"errors"
	"math"

	"github.com/marcela981/Somos-Server/internal/models"
)

var ErrIncompleteProfile = errors.New("profile is missing fields required for calorie math")

// activityFactors maps activity levels to their TDEE multiplier. The values
// (including the 1.55 moderate default) are part of the product contract.
var activityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

const (
	defaultActivityFactor = 1.55
	minDailyCalories      = 1200

	weightLossDeficit  = 500
	muscleGainSurplus  = 300
	caloriesPerGramPC  = 4
	caloriesPerGramFat = 9
)

type macroSplit struct {
	protein float64
	carbs   float64
	fat     float64
}

// macroSplits per goal; unlisted goals fall back to the general split.
var macroSplits = map[string]macroSplit{
	"weight_loss": {protein: 0.40, carbs: 0.30, fat: 0.30},
	"muscle_gain": {protein: 0.30, carbs: 0.45, fat: 0.25},
	"strength":    {protein: 0.30, carbs: 0.45, fat: 0.25},
}

var generalMacroSplit = macroSplit{protein: 0.30, carbs: 0.40, fat: 0.30}

// ComputeCalorieGoal derives BMR (Mifflin-St Jeor), maintenance calories, a
// goal-adjusted daily target, and macro gram targets from the profile.
// Weight, height, and age are required; activity level defaults to moderate
// and gender defaults to the female constant when absent.
func ComputeCalorieGoal(profile *models.UserProfile) (*models.CalorieGoal, error) {
	if profile == nil || profile.WeightKG == nil || profile.HeightCM == nil || profile.Age == nil {
		return nil, ErrIncompleteProfile
	}

	bmr := 10**profile.WeightKG + 6.25**profile.HeightCM - 5*float64(*profile.Age)
	if profile.Gender != nil && *profile.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	factor := defaultActivityFactor
	if profile.ActivityLevel != nil {
		if known, ok := activityFactors[*profile.ActivityLevel]; ok {
			factor = known
		}
	}
	maintenance := bmr * factor

	goal := ""
	if profile.Goal != nil {
		goal = *profile.Goal
	}

	target := maintenance
	switch goal {
	case "weight_loss":
		target = maintenance - weightLossDeficit
	case "muscle_gain":
		target = maintenance + muscleGainSurplus
	}
	if target < minDailyCalories {
		target = minDailyCalories
	}

	split, ok := macroSplits[goal]
	if !ok {
		split = generalMacroSplit
	}

	return &models.CalorieGoal{
		BMR:                 math.Round(bmr),
		MaintenanceCalories: math.Round(maintenance),
		TargetCalories:      math.Round(target),
		ActivityFactor:      factor,
		Macros: models.MacroTargets{
			ProteinG: math.Round(target * split.protein / caloriesPerGramPC),
			CarbsG:   math.Round(target * split.carbs / caloriesPerGramPC),
			FatG:     math.Round(target * split.fat / caloriesPerGramFat),
		},
	}, nil
}
