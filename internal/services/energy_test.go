package services

import (
	"errors"
	"math"
	"testing"

	"github.com/marcela981/Somos-Server/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func baseProfile() *models.UserProfile {
	return &models.UserProfile{
		WeightKG: floatPtr(80),
		HeightCM: floatPtr(180),
		Age:      intPtr(30),
		Gender:   strPtr("male"),
	}
}

func TestComputeCalorieGoalRequiresCoreFields(t *testing.T) {
	cases := []struct {
		name    string
		profile *models.UserProfile
	}{
		{name: "nil profile", profile: nil},
		{name: "missing weight", profile: &models.UserProfile{HeightCM: floatPtr(180), Age: intPtr(30)}},
		{name: "missing height", profile: &models.UserProfile{WeightKG: floatPtr(80), Age: intPtr(30)}},
		{name: "missing age", profile: &models.UserProfile{WeightKG: floatPtr(80), HeightCM: floatPtr(180)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeCalorieGoal(tc.profile)
			if !errors.Is(err, ErrIncompleteProfile) {
				t.Fatalf("expected ErrIncompleteProfile, got %v", err)
			}
		})
	}
}

func TestComputeCalorieGoalMaleBMR(t *testing.T) {
	goal, err := ComputeCalorieGoal(baseProfile())
	if err != nil {
		t.Fatalf("ComputeCalorieGoal: %v", err)
	}

	// 10*80 + 6.25*180 - 5*30 + 5 = 1780
	if goal.BMR != 1780 {
		t.Fatalf("expected BMR 1780, got %v", goal.BMR)
	}
	if goal.ActivityFactor != 1.55 {
		t.Fatalf("expected default activity factor 1.55, got %v", goal.ActivityFactor)
	}
	if want := math.Round(1780 * 1.55); goal.MaintenanceCalories != want {
		t.Fatalf("expected maintenance %v, got %v", want, goal.MaintenanceCalories)
	}
}

func TestComputeCalorieGoalFemaleBMRIsDefault(t *testing.T) {
	profile := baseProfile()
	profile.Gender = nil
	goal, err := ComputeCalorieGoal(profile)
	if err != nil {
		t.Fatalf("ComputeCalorieGoal: %v", err)
	}

	// 10*80 + 6.25*180 - 5*30 - 161 = 1614
	if goal.BMR != 1614 {
		t.Fatalf("expected BMR 1614, got %v", goal.BMR)
	}
}

func TestComputeCalorieGoalActivityFactors(t *testing.T) {
	cases := map[string]float64{
		"sedentary":   1.2,
		"light":       1.375,
		"moderate":    1.55,
		"active":      1.725,
		"very_active": 1.9,
	}
	for level, want := range cases {
		profile := baseProfile()
		profile.ActivityLevel = &level
		goal, err := ComputeCalorieGoal(profile)
		if err != nil {
			t.Fatalf("ComputeCalorieGoal(%s): %v", level, err)
		}
		if goal.ActivityFactor != want {
			t.Fatalf("expected factor %v for %s, got %v", want, level, goal.ActivityFactor)
		}
	}

	unknown := "astronaut"
	profile := baseProfile()
	profile.ActivityLevel = &unknown
	goal, err := ComputeCalorieGoal(profile)
	if err != nil {
		t.Fatalf("ComputeCalorieGoal: %v", err)
	}
	if goal.ActivityFactor != 1.55 {
		t.Fatalf("expected unknown level to use 1.55, got %v", goal.ActivityFactor)
	}
}

func TestComputeCalorieGoalAdjustsForGoal(t *testing.T) {
	maintenance := func() float64 {
		goal, err := ComputeCalorieGoal(baseProfile())
		if err != nil {
			t.Fatalf("ComputeCalorieGoal: %v", err)
		}
		return goal.MaintenanceCalories
	}()

	lossProfile := baseProfile()
	lossProfile.Goal = strPtr("weight_loss")
	loss, err := ComputeCalorieGoal(lossProfile)
	if err != nil {
		t.Fatalf("ComputeCalorieGoal: %v", err)
	}
	if loss.TargetCalories != maintenance-500 {
		t.Fatalf("expected weight_loss target %v, got %v", maintenance-500, loss.TargetCalories)
	}

	gainProfile := baseProfile()
	gainProfile.Goal = strPtr("muscle_gain")
	gain, err := ComputeCalorieGoal(gainProfile)
	if err != nil {
		t.Fatalf("ComputeCalorieGoal: %v", err)
	}
	if gain.TargetCalories != maintenance+300 {
		t.Fatalf("expected muscle_gain target %v, got %v", maintenance+300, gain.TargetCalories)
	}
}

func TestComputeCalorieGoalFloorsTarget(t *testing.T) {
	profile := &models.UserProfile{
		WeightKG:      floatPtr(40),
		HeightCM:      floatPtr(150),
		Age:           intPtr(70),
		Goal:          strPtr("weight_loss"),
		ActivityLevel: strPtr("sedentary"),
	}
	goal, err := ComputeCalorieGoal(profile)
	if err != nil {
		t.Fatalf("ComputeCalorieGoal: %v", err)
	}
	if goal.TargetCalories < 1200 {
		t.Fatalf("expected target floored at 1200, got %v", goal.TargetCalories)
	}
}

func TestComputeCalorieGoalMacroSplit(t *testing.T) {
	profile := baseProfile()
	profile.Goal = strPtr("weight_loss")
	goal, err := ComputeCalorieGoal(profile)
	if err != nil {
		t.Fatalf("ComputeCalorieGoal: %v", err)
	}

	target := goal.TargetCalories
	if want := math.Round(target * 0.40 / 4); goal.Macros.ProteinG != want {
		t.Fatalf("expected protein %v, got %v", want, goal.Macros.ProteinG)
	}
	if want := math.Round(target * 0.30 / 4); goal.Macros.CarbsG != want {
		t.Fatalf("expected carbs %v, got %v", want, goal.Macros.CarbsG)
	}
	if want := math.Round(target * 0.30 / 9); goal.Macros.FatG != want {
		t.Fatalf("expected fat %v, got %v", want, goal.Macros.FatG)
	}
}
