package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

type AdvisoryIntent string

const (
	IntentWorkout          AdvisoryIntent = "workout"
	IntentNutrition        AdvisoryIntent = "nutrition"
	IntentProgressAnalysis AdvisoryIntent = "progress_analysis"
	IntentMotivation       AdvisoryIntent = "motivation"
)

// ParseAdvisoryIntent maps the wire value onto the intent enum. The zero
// value is never a valid intent.
func ParseAdvisoryIntent(raw string) (AdvisoryIntent, bool) {
	intent := AdvisoryIntent(strings.TrimSpace(raw))
	switch intent {
	case IntentWorkout, IntentNutrition, IntentProgressAnalysis, IntentMotivation:
		return intent, true
	default:
		return "", false
	}
}

// AdvisorySuggestion is the audit record written after each advisory call.
// Rows are write-once: no update or delete path exists.
type AdvisorySuggestion struct {
	ID           uuid.UUID       `json:"id"`
	UserID       int64           `json:"user_id"`
	Intent       AdvisoryIntent  `json:"intent"`
	PromptText   string          `json:"prompt_text"`
	ResponseText string          `json:"response_text"`
	Context      json.RawMessage `json:"context"`
	CreatedAt    time.Time       `json:"created_at"`
}
