package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/marcela981/Somos-Server/internal/models"
	"github.com/rs/zerolog"
)

func newTestGateway(serverURL string) *GeminiGateway {
	return NewGeminiGateway(serverURL, "test-key", "gemini-1.5-flash", 2*time.Second, zerolog.Nop())
}

func TestGeminiGatewayReturnsModelText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-1.5-flash:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
			t.Errorf("unexpected request shape: %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"plan personalizado"}]}}]}`))
	}))
	defer server.Close()

	result := newTestGateway(server.URL).Invoke(context.Background(), models.IntentWorkout, "prompt")
	if result.Source != GatewaySourceModel {
		t.Fatalf("expected model source, got %q (cause %v)", result.Source, result.Cause)
	}
	if result.Text != "plan personalizado" {
		t.Fatalf("expected model text, got %q", result.Text)
	}
	if result.Cause != nil {
		t.Fatalf("expected nil cause, got %v", result.Cause)
	}
}

func TestGeminiGatewayFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	result := newTestGateway(server.URL).Invoke(context.Background(), models.IntentNutrition, "prompt")
	if result.Source != GatewaySourceFallback {
		t.Fatalf("expected fallback source, got %q", result.Source)
	}
	if result.Cause == nil {
		t.Fatal("expected cause to record the failure")
	}
	if result.Text != fallbackNutritionJSON {
		t.Fatal("expected nutrition fallback text")
	}
}

func TestGeminiGatewayFallsBackOnTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	gateway := NewGeminiGateway(server.URL, "test-key", "gemini-1.5-flash", 50*time.Millisecond, zerolog.Nop())
	result := gateway.Invoke(context.Background(), models.IntentMotivation, "prompt")
	if result.Source != GatewaySourceFallback {
		t.Fatalf("expected fallback source, got %q", result.Source)
	}
	if result.Text != fallbackEncouragement {
		t.Fatalf("expected encouragement fallback, got %q", result.Text)
	}
}

func TestGeminiGatewayFallsBackOnEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	result := newTestGateway(server.URL).Invoke(context.Background(), models.IntentWorkout, "prompt")
	if result.Source != GatewaySourceFallback {
		t.Fatalf("expected fallback source, got %q", result.Source)
	}
}

func TestWorkoutFallbackIsValidPlanJSON(t *testing.T) {
	var plan struct {
		WeekPlan []struct {
			Day       string `json:"day"`
			Focus     string `json:"focus"`
			Exercises []struct {
				Name string `json:"name"`
				Sets int    `json:"sets"`
			} `json:"exercises"`
		} `json:"weekPlan"`
		Tips        []string `json:"tips"`
		Progression string   `json:"progression"`
	}
	if err := json.Unmarshal([]byte(FallbackText(models.IntentWorkout)), &plan); err != nil {
		t.Fatalf("workout fallback is not valid JSON: %v", err)
	}
	if len(plan.WeekPlan) == 0 {
		t.Fatal("expected non-empty weekPlan")
	}
	for _, day := range plan.WeekPlan {
		if len(day.Exercises) == 0 {
			t.Fatalf("expected exercises for %s", day.Day)
		}
	}
	if plan.Progression == "" {
		t.Fatal("expected progression guidance")
	}
}

func TestNutritionFallbackIsValidJSON(t *testing.T) {
	var advice struct {
		DailyCalories float64           `json:"dailyCalories"`
		Macros        map[string]string `json:"macros"`
		Hydration     string            `json:"hydration"`
	}
	if err := json.Unmarshal([]byte(FallbackText(models.IntentNutrition)), &advice); err != nil {
		t.Fatalf("nutrition fallback is not valid JSON: %v", err)
	}
	if advice.DailyCalories <= 0 {
		t.Fatal("expected positive dailyCalories")
	}
	if len(advice.Macros) != 3 {
		t.Fatalf("expected 3 macro entries, got %d", len(advice.Macros))
	}
}
