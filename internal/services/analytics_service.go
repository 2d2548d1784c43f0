package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/marcela981/Somos-Server/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// AnalyticsService computes progress summaries and calorie goals over a
// user's log history. Summaries are derived fresh on every request.
type AnalyticsService struct {
	profileRepo   advisoryProfileReader
	weightLogs    weightLogReader
	workoutLogs   workoutLogReader
	nutritionLogs nutritionLogReader
	log           zerolog.Logger
}

func NewAnalyticsService(
	profileRepo advisoryProfileReader,
	weightLogs weightLogReader,
	workoutLogs workoutLogReader,
	nutritionLogs nutritionLogReader,
	log zerolog.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		profileRepo:   profileRepo,
		weightLogs:    weightLogs,
		workoutLogs:   workoutLogs,
		nutritionLogs: nutritionLogs,
		log:           log,
	}
}

func (s *AnalyticsService) ProgressSummary(
	ctx context.Context,
	userID int64,
	timeRange models.TimeRange,
) (*models.ProgressSummary, error) {
	if timeRange == "" {
		timeRange = models.TimeRangeAll
	}
	now := time.Now().UTC()
	since := timeRange.WindowStart(now)

	var (
		weightLogs    []models.WeightLog
		workoutLogs   []models.WorkoutLog
		nutritionLogs []models.NutritionLog
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		weightLogs, err = s.weightLogs.ListSince(groupCtx, userID, since)
		return err
	})
	group.Go(func() error {
		var err error
		workoutLogs, err = s.workoutLogs.ListSince(groupCtx, userID, since)
		return err
	})
	group.Go(func() error {
		var err error
		nutritionLogs, err = s.nutritionLogs.ListSince(groupCtx, userID, since)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("fetch logs: %w", err)
	}

	return &models.ProgressSummary{
		Range:       timeRange,
		Weight:      ComputeTrend(weightTrendPoints(weightLogs)),
		Strength:    ComputeTrend(strengthTrendPoints(workoutLogs)),
		Consistency: workoutConsistency(workoutLogs, since, now),
		Nutrition:   nutritionAverages(nutritionLogs),
	}, nil
}

func (s *AnalyticsService) CalorieGoal(ctx context.Context, userID int64) (*models.CalorieGoal, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve profile: %w", err)
	}
	return ComputeCalorieGoal(profile)
}

func workoutConsistency(logs []models.WorkoutLog, since *time.Time, now time.Time) models.WorkoutConsistency {
	consistency := models.WorkoutConsistency{TotalSessions: len(logs)}
	if len(logs) == 0 {
		return consistency
	}

	days := make([]time.Time, 0, len(logs))
	var last time.Time
	var first time.Time
	for i, log := range logs {
		days = append(days, log.LoggedAt)
		if i == 0 || log.LoggedAt.Before(first) {
			first = log.LoggedAt
		}
		if log.LoggedAt.After(last) {
			last = log.LoggedAt
		}
	}

	// Window span: the requested range when bounded, otherwise the observed
	// span of the logs themselves.
	start := first
	if since != nil {
		start = *since
	}
	weeks := now.Sub(start).Hours() / 24 / 7
	if weeks < 1 {
		weeks = 1
	}

	consistency.SessionsPerWeek = float64(len(logs)) / weeks
	consistency.LongestStreakDays = LongestDailyStreak(days)
	consistency.CurrentStreakDays = CurrentDailyStreak(days)
	consistency.LastWorkoutAt = &last
	return consistency
}

// nutritionAverages groups logs by calendar day and averages the per-day
// totals, so two snacks and a dinner on the same day count once.
func nutritionAverages(logs []models.NutritionLog) models.NutritionAverages {
	if len(logs) == 0 {
		return models.NutritionAverages{}
	}

	type dayTotals struct {
		calories, protein, carbs, fat, water float64
	}
	byDay := make(map[string]*dayTotals)
	for _, log := range logs {
		key := log.LoggedAt.UTC().Format("2006-01-02")
		totals, ok := byDay[key]
		if !ok {
			totals = &dayTotals{}
			byDay[key] = totals
		}
		totals.calories += log.Calories
		totals.protein += log.ProteinG
		totals.carbs += log.CarbsG
		totals.fat += log.FatG
		totals.water += log.WaterML
	}

	averages := models.NutritionAverages{DaysLogged: len(byDay)}
	for _, totals := range byDay {
		averages.AvgCalories += totals.calories
		averages.AvgProteinG += totals.protein
		averages.AvgCarbsG += totals.carbs
		averages.AvgFatG += totals.fat
		averages.AvgWaterML += totals.water
	}
	n := float64(len(byDay))
	averages.AvgCalories /= n
	averages.AvgProteinG /= n
	averages.AvgCarbsG /= n
	averages.AvgFatG /= n
	averages.AvgWaterML /= n
	return averages
}
