package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/marcela981/Somos-Server/internal/models"
)

// notSpecified is rendered for any absent optional profile field so the
// downstream model never sees an empty or undefined token.
const notSpecified = "not specified"

type WorkoutParams struct {
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	Focus           string   `json:"focus,omitempty"`
	Equipment       []string `json:"equipment,omitempty"`
}

type NutritionParams struct {
	CurrentWeightKG *float64 `json:"current_weight_kg,omitempty"`
	TargetWeightKG  *float64 `json:"target_weight_kg,omitempty"`
	ActivityLevel   string   `json:"activity_level,omitempty"`
}

type ProgressParams struct {
	TimeRange models.TimeRange `json:"time_range,omitempty"`
}

type MotivationParams struct {
	StreakDays    int    `json:"streak_days,omitempty"`
	LastSessionAt string `json:"last_session_at,omitempty"`
}

// PromptContext carries the per-intent parameters merged into the prompt.
// Exactly one of the intent variants is expected to be set; Trends is filled
// by the orchestrator when historical data was gathered. The serialized form
// is embedded in the prompt and persisted with the suggestion record.
type PromptContext struct {
	Workout    *WorkoutParams                 `json:"workout,omitempty"`
	Nutrition  *NutritionParams               `json:"nutrition,omitempty"`
	Progress   *ProgressParams                `json:"progress,omitempty"`
	Motivation *MotivationParams              `json:"motivation,omitempty"`
	Trends     map[string]models.TrendSummary `json:"trends,omitempty"`
}

const workoutPromptTemplate = `You are a certified personal trainer creating a weekly workout plan.

Client profile:
- Name: %s
- Goal: %s
- Experience level: %s
- Age: %s
- Weight: %s
- Height: %s
- Available equipment: %s

Request context (JSON):
%s

Respond in Spanish. Reply ONLY with a JSON object matching this exact schema, no markdown fences and no extra text:
{"weekPlan": [{"day": string, "focus": string, "exercises": [{"name": string, "sets": number, "reps": string, "rest": string, "equipment": string, "alternative": string}]}], "tips": [string], "progression": string}`

const nutritionPromptTemplate = `You are a sports nutritionist preparing daily nutrition advice.

Client profile:
- Name: %s
- Goal: %s
- Age: %s
- Weight: %s
- Height: %s
- Activity level: %s

Request context (JSON):
%s

Respond in Spanish. Reply ONLY with a JSON object matching this exact schema, no markdown fences and no extra text:
{"dailyCalories": number, "macros": {"protein": "<grams>g (<pct>%%)", "carbs": "<grams>g (<pct>%%)", "fat": "<grams>g (<pct>%%)"}, "mealSuggestions": [{"meal": string, "foods": [string], "calories": number}], "tips": [string], "hydration": string}`

const progressPromptTemplate = `You are a fitness coach reviewing a client's recent progress.

Client profile:
- Name: %s
- Goal: %s
- Experience level: %s

Computed trends and request context (JSON):
%s

Respond in Spanish. Reply ONLY with a JSON object matching this exact schema, no markdown fences and no extra text:
{"trends": {"weight": string, "strength": string, "consistency": string}, "insights": [string], "recommendations": [string], "motivation": string}`

const motivationPromptTemplate = `You are a supportive fitness coach writing a short motivational message.

Client profile:
- Name: %s
- Goal: %s
- Current streak: %s consecutive days
- Last session: %s

Request context (JSON):
%s

Respond in Spanish with plain text only (no JSON). Keep it under 200 words, personal, and encouraging.`

// BuildPrompt renders the template for the given intent. It is pure: no I/O,
// no side effects. The only errors are contract violations (nil profile,
// unknown intent), which callers are expected to have ruled out already.
func BuildPrompt(intent models.AdvisoryIntent, profile *models.UserProfile, promptCtx PromptContext) (string, error) {
	if profile == nil {
		return "", fmt.Errorf("build prompt: profile is required")
	}

	contextJSON, err := json.Marshal(promptCtx)
	if err != nil {
		return "", fmt.Errorf("build prompt: marshal context: %w", err)
	}

	switch intent {
	case models.IntentWorkout:
		return fmt.Sprintf(workoutPromptTemplate,
			stringField(profile.FullName),
			stringField(profile.Goal),
			stringField(profile.ExperienceLevel),
			intField(profile.Age),
			floatField(profile.WeightKG, "kg"),
			floatField(profile.HeightCM, "cm"),
			equipmentField(profile.Equipment),
			contextJSON,
		), nil
	case models.IntentNutrition:
		return fmt.Sprintf(nutritionPromptTemplate,
			stringField(profile.FullName),
			stringField(profile.Goal),
			intField(profile.Age),
			floatField(profile.WeightKG, "kg"),
			floatField(profile.HeightCM, "cm"),
			stringField(profile.ActivityLevel),
			contextJSON,
		), nil
	case models.IntentProgressAnalysis:
		return fmt.Sprintf(progressPromptTemplate,
			stringField(profile.FullName),
			stringField(profile.Goal),
			stringField(profile.ExperienceLevel),
			contextJSON,
		), nil
	case models.IntentMotivation:
		streak := notSpecified
		lastSession := notSpecified
		if promptCtx.Motivation != nil {
			if promptCtx.Motivation.StreakDays > 0 {
				streak = fmt.Sprintf("%d", promptCtx.Motivation.StreakDays)
			}
			if promptCtx.Motivation.LastSessionAt != "" {
				lastSession = promptCtx.Motivation.LastSessionAt
			}
		}
		return fmt.Sprintf(motivationPromptTemplate,
			stringField(profile.FullName),
			stringField(profile.Goal),
			streak,
			lastSession,
			contextJSON,
		), nil
	default:
		return "", fmt.Errorf("build prompt: unknown intent %q", intent)
	}
}

func stringField(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return notSpecified
	}
	return *value
}

func intField(value *int) string {
	if value == nil {
		return notSpecified
	}
	return fmt.Sprintf("%d", *value)
}

func floatField(value *float64, unit string) string {
	if value == nil {
		return notSpecified
	}
	return fmt.Sprintf("%.1f %s", *value, unit)
}

func equipmentField(equipment *[]string) string {
	if equipment == nil || len(*equipment) == 0 {
		return notSpecified
	}
	return strings.Join(*equipment, ", ")
}
