package models

import "time"

type UserProfile struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	FullName           *string   `json:"full_name"`
	AvatarURL          *string   `json:"avatar_url"`
	Age                *int      `json:"age"`
	Gender             *string   `json:"gender"`
	HeightCM           *float64  `json:"height_cm"`
	WeightKG           *float64  `json:"weight_kg"`
	Goal               *string   `json:"goal"`
	ExperienceLevel    *string   `json:"experience_level"`
	Equipment          *[]string `json:"equipment"`
	ActivityLevel      *string   `json:"activity_level"`
	OnboardingComplete bool      `json:"onboarding_complete"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
