package models

import (
	"strings"
	"time"
)

const (
	TrendIncreasing       = "increasing"
	TrendDecreasing       = "decreasing"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

type TrendPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// TrendSummary is derived on every request and never persisted.
type TrendSummary struct {
	Direction  string  `json:"direction"`
	Magnitude  float64 `json:"magnitude"`
	SampleSize int     `json:"sample_size"`
}

type TimeRange string

const (
	TimeRange7Days  TimeRange = "7_days"
	TimeRange30Days TimeRange = "30_days"
	TimeRange90Days TimeRange = "90_days"
	TimeRangeAll    TimeRange = "all"
)

// ParseTimeRange accepts the wire vocabulary; an empty value means "all".
func ParseTimeRange(raw string) (TimeRange, bool) {
	trimmed := TimeRange(strings.TrimSpace(raw))
	switch trimmed {
	case "":
		return TimeRangeAll, true
	case TimeRange7Days, TimeRange30Days, TimeRange90Days, TimeRangeAll:
		return trimmed, true
	default:
		return "", false
	}
}

// WindowStart returns the inclusive lower bound of the range, or nil when the
// range is unbounded.
func (tr TimeRange) WindowStart(now time.Time) *time.Time {
	var days int
	switch tr {
	case TimeRange7Days:
		days = 7
	case TimeRange30Days:
		days = 30
	case TimeRange90Days:
		days = 90
	default:
		return nil
	}
	start := now.AddDate(0, 0, -days)
	return &start
}

type WorkoutConsistency struct {
	TotalSessions     int        `json:"total_sessions"`
	SessionsPerWeek   float64    `json:"sessions_per_week"`
	CurrentStreakDays int        `json:"current_streak_days"`
	LongestStreakDays int        `json:"longest_streak_days"`
	LastWorkoutAt     *time.Time `json:"last_workout_at,omitempty"`
}

type NutritionAverages struct {
	DaysLogged  int     `json:"days_logged"`
	AvgCalories float64 `json:"avg_calories"`
	AvgProteinG float64 `json:"avg_protein_g"`
	AvgCarbsG   float64 `json:"avg_carbs_g"`
	AvgFatG     float64 `json:"avg_fat_g"`
	AvgWaterML  float64 `json:"avg_water_ml"`
}

type ProgressSummary struct {
	Range       TimeRange          `json:"range"`
	Weight      TrendSummary       `json:"weight"`
	Strength    TrendSummary       `json:"strength"`
	Consistency WorkoutConsistency `json:"consistency"`
	Nutrition   NutritionAverages  `json:"nutrition"`
}

type MacroTargets struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

type CalorieGoal struct {
	BMR                 float64      `json:"bmr"`
	MaintenanceCalories float64      `json:"maintenance_calories"`
	TargetCalories      float64      `json:"target_calories"`
	ActivityFactor      float64      `json:"activity_factor"`
	Macros              MacroTargets `json:"macros"`
}

type ProfileEcho struct {
	Name            string `json:"name"`
	Goal            string `json:"goal"`
	ExperienceLevel string `json:"experience_level"`
}

type AdviceSupportingData struct {
	Trend   *TrendSummary `json:"trend,omitempty"`
	Profile ProfileEcho   `json:"profile"`
}

type AdviceResponse struct {
	Recommendation string               `json:"recommendation"`
	SupportingData AdviceSupportingData `json:"supporting_data"`
}
