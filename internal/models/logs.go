package models

import "time"

type WeightLog struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	LoggedAt   time.Time `json:"logged_at"`
	WeightKG   float64   `json:"weight_kg"`
	BodyFatPct *float64  `json:"body_fat_pct"`
	CreatedAt  time.Time `json:"created_at"`
}

type WorkoutLog struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	LoggedAt        time.Time `json:"logged_at"`
	ExerciseName    string    `json:"exercise_name"`
	Sets            int       `json:"sets"`
	Reps            int       `json:"reps"`
	WeightLiftedKG  *float64  `json:"weight_lifted_kg"`
	DurationMinutes *int      `json:"duration_minutes"`
	Feedback        *string   `json:"feedback"`
	CreatedAt       time.Time `json:"created_at"`
}

type NutritionLog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	LoggedAt  time.Time `json:"logged_at"`
	Calories  float64   `json:"calories"`
	ProteinG  float64   `json:"protein_g"`
	CarbsG    float64   `json:"carbs_g"`
	FatG      float64   `json:"fat_g"`
	WaterML   float64   `json:"water_ml"`
	CreatedAt time.Time `json:"created_at"`
}
