package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/marcela981/Somos-Server/internal/models"
	"github.com/rs/zerolog"
)

func newAnalyticsFixture() (*stubProfileReader, *stubWeightReader, *stubWorkoutReader, *stubNutritionReader, *AnalyticsService) {
	profiles := &stubProfileReader{profile: fullProfile()}
	weights := &stubWeightReader{}
	workouts := &stubWorkoutReader{}
	nutrition := &stubNutritionReader{}
	service := NewAnalyticsService(profiles, weights, workouts, nutrition, zerolog.Nop())
	return profiles, weights, workouts, nutrition, service
}

func TestProgressSummaryEmptyHistory(t *testing.T) {
	_, _, _, _, service := newAnalyticsFixture()

	summary, err := service.ProgressSummary(context.Background(), 1, models.TimeRange30Days)
	if err != nil {
		t.Fatalf("ProgressSummary: %v", err)
	}
	if summary.Range != models.TimeRange30Days {
		t.Fatalf("expected range echoed, got %q", summary.Range)
	}
	if summary.Weight.Direction != models.TrendInsufficientData {
		t.Fatalf("expected insufficient_data weight trend, got %q", summary.Weight.Direction)
	}
	if summary.Consistency.TotalSessions != 0 {
		t.Fatalf("expected zero sessions, got %d", summary.Consistency.TotalSessions)
	}
	if summary.Nutrition.DaysLogged != 0 {
		t.Fatalf("expected zero days logged, got %d", summary.Nutrition.DaysLogged)
	}
}

func TestProgressSummaryComputesConsistency(t *testing.T) {
	_, _, workouts, _, service := newAnalyticsFixture()
	for i := 0; i < 3; i++ {
		workouts.logs = append(workouts.logs, models.WorkoutLog{LoggedAt: day(i), ExerciseName: "squat"})
	}
	// Gap, then two more consecutive days.
	workouts.logs = append(workouts.logs,
		models.WorkoutLog{LoggedAt: day(5), ExerciseName: "bench"},
		models.WorkoutLog{LoggedAt: day(6), ExerciseName: "deadlift"},
	)

	summary, err := service.ProgressSummary(context.Background(), 1, models.TimeRangeAll)
	if err != nil {
		t.Fatalf("ProgressSummary: %v", err)
	}
	if summary.Consistency.TotalSessions != 5 {
		t.Fatalf("expected 5 sessions, got %d", summary.Consistency.TotalSessions)
	}
	if summary.Consistency.LongestStreakDays != 3 {
		t.Fatalf("expected longest streak 3, got %d", summary.Consistency.LongestStreakDays)
	}
	if summary.Consistency.CurrentStreakDays != 2 {
		t.Fatalf("expected current streak 2, got %d", summary.Consistency.CurrentStreakDays)
	}
	if summary.Consistency.LastWorkoutAt == nil || !summary.Consistency.LastWorkoutAt.Equal(day(6)) {
		t.Fatalf("expected last workout at %v, got %v", day(6), summary.Consistency.LastWorkoutAt)
	}
	if summary.Consistency.SessionsPerWeek <= 0 {
		t.Fatalf("expected positive sessions per week, got %v", summary.Consistency.SessionsPerWeek)
	}
}

func TestProgressSummaryNutritionAveragesGroupByDay(t *testing.T) {
	_, _, _, nutrition, service := newAnalyticsFixture()
	// Two entries on the same day plus one on another day.
	nutrition.logs = []models.NutritionLog{
		{LoggedAt: day(0), Calories: 600, ProteinG: 40, WaterML: 500},
		{LoggedAt: day(0).Add(6 * time.Hour), Calories: 1400, ProteinG: 80, WaterML: 1000},
		{LoggedAt: day(1), Calories: 1800, ProteinG: 100, WaterML: 2000},
	}

	summary, err := service.ProgressSummary(context.Background(), 1, models.TimeRange7Days)
	if err != nil {
		t.Fatalf("ProgressSummary: %v", err)
	}
	if summary.Nutrition.DaysLogged != 2 {
		t.Fatalf("expected 2 days logged, got %d", summary.Nutrition.DaysLogged)
	}
	// Day totals 2000 and 1800 average to 1900.
	if summary.Nutrition.AvgCalories != 1900 {
		t.Fatalf("expected avg calories 1900, got %v", summary.Nutrition.AvgCalories)
	}
	if summary.Nutrition.AvgProteinG != 110 {
		t.Fatalf("expected avg protein 110, got %v", summary.Nutrition.AvgProteinG)
	}
}

func TestCalorieGoalErrors(t *testing.T) {
	profiles, _, _, _, service := newAnalyticsFixture()

	profiles.err = pgx.ErrNoRows
	if _, err := service.CalorieGoal(context.Background(), 99); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	profiles.err = nil
	profiles.profile = &models.UserProfile{}
	if _, err := service.CalorieGoal(context.Background(), 1); !errors.Is(err, ErrIncompleteProfile) {
		t.Fatalf("expected ErrIncompleteProfile, got %v", err)
	}
}

func TestCalorieGoalComputesFromProfile(t *testing.T) {
	_, _, _, _, service := newAnalyticsFixture()

	goal, err := service.CalorieGoal(context.Background(), 1)
	if err != nil {
		t.Fatalf("CalorieGoal: %v", err)
	}
	if goal.BMR <= 0 || goal.TargetCalories <= 0 {
		t.Fatalf("expected positive calorie math, got %+v", goal)
	}
}
