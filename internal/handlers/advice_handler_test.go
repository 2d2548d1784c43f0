package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/marcela981/Somos-Server/internal/models"
	"github.com/marcela981/Somos-Server/internal/services"
)

type stubAdviceService struct {
	lastIntent  models.AdvisoryIntent
	lastContext services.AdviceContext
	response    *models.AdviceResponse
	err         error
	history     []models.AdvisorySuggestion
	calls       int
}

func (s *stubAdviceService) GetAdvice(_ context.Context, _ int64, intent models.AdvisoryIntent, adviceCtx services.AdviceContext) (*models.AdviceResponse, error) {
	s.calls++
	s.lastIntent = intent
	s.lastContext = adviceCtx
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func (s *stubAdviceService) GetHistory(_ context.Context, _ int64, _, _ int) ([]models.AdvisorySuggestion, int, error) {
	return s.history, len(s.history), nil
}

func defaultAdviceResponse() *models.AdviceResponse {
	return &models.AdviceResponse{
		Recommendation: "entrena tres veces por semana",
		SupportingData: models.AdviceSupportingData{
			Profile: models.ProfileEcho{Name: "Sam", Goal: "muscle_gain", ExperienceLevel: "beginner"},
		},
	}
}

func newAdviceApp(service *stubAdviceService) *fiber.App {
	handler := NewAdviceHandler(service)
	app := newAuthedApp("42")
	app.Post("/api/v1/ai/recommendations", handler.GetRecommendation)
	app.Post("/api/v1/ai/workout-plan", handler.GetWorkoutPlan)
	app.Post("/api/v1/ai/nutrition-advice", handler.GetNutritionAdvice)
	app.Post("/api/v1/ai/analyze-progress", handler.AnalyzeProgress)
	app.Get("/api/v1/ai/history", handler.GetHistory)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestGetRecommendationDispatchesIntent(t *testing.T) {
	service := &stubAdviceService{response: defaultAdviceResponse()}
	app := newAdviceApp(service)

	resp := postJSON(t, app, "/api/v1/ai/recommendations",
		`{"type":"workout","context":{"duration_minutes":45,"focus":"upper body","equipment":["dumbbells"]}}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastIntent != models.IntentWorkout {
		t.Fatalf("expected workout intent, got %q", service.lastIntent)
	}
	if service.lastContext.Workout == nil || service.lastContext.Workout.DurationMinutes != 45 {
		t.Fatalf("expected workout params forwarded, got %+v", service.lastContext.Workout)
	}

	var payload models.AdviceResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Recommendation == "" {
		t.Fatal("expected non-empty recommendation")
	}
}

func TestGetRecommendationRejectsUnknownType(t *testing.T) {
	service := &stubAdviceService{response: defaultAdviceResponse()}
	app := newAdviceApp(service)

	resp := postJSON(t, app, "/api/v1/ai/recommendations", `{"type":"astrology"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if service.calls != 0 {
		t.Fatal("expected service to stay untouched for unknown type")
	}
}

func TestGetRecommendationRejectsBadTimeRange(t *testing.T) {
	service := &stubAdviceService{response: defaultAdviceResponse()}
	app := newAdviceApp(service)

	resp := postJSON(t, app, "/api/v1/ai/recommendations",
		`{"type":"progress_analysis","context":{"time_range":"14_days"}}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestAdviceErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "user not found", err: services.ErrUserNotFound, want: http.StatusNotFound},
		{name: "invalid intent", err: services.ErrInvalidIntent, want: http.StatusBadRequest},
		{name: "downstream failure", err: context.DeadlineExceeded, want: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service := &stubAdviceService{err: tc.err}
			app := newAdviceApp(service)

			resp := postJSON(t, app, "/api/v1/ai/workout-plan", `{"duration_minutes":30}`)
			defer resp.Body.Close()

			if resp.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}

func TestGetNutritionAdviceForwardsParams(t *testing.T) {
	service := &stubAdviceService{response: defaultAdviceResponse()}
	app := newAdviceApp(service)

	resp := postJSON(t, app, "/api/v1/ai/nutrition-advice",
		`{"current_weight_kg":78,"target_weight_kg":72,"activity_level":"moderate"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastIntent != models.IntentNutrition {
		t.Fatalf("expected nutrition intent, got %q", service.lastIntent)
	}
	params := service.lastContext.Nutrition
	if params == nil || params.CurrentWeightKG == nil || *params.CurrentWeightKG != 78 {
		t.Fatalf("expected current weight forwarded, got %+v", params)
	}
}

func TestGetNutritionAdviceRejectsNonPositiveWeight(t *testing.T) {
	service := &stubAdviceService{response: defaultAdviceResponse()}
	app := newAdviceApp(service)

	resp := postJSON(t, app, "/api/v1/ai/nutrition-advice", `{"current_weight_kg":0}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestAnalyzeProgressForwardsTimeRange(t *testing.T) {
	service := &stubAdviceService{response: defaultAdviceResponse()}
	app := newAdviceApp(service)

	resp := postJSON(t, app, "/api/v1/ai/analyze-progress", `{"time_range":"90_days"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastIntent != models.IntentProgressAnalysis {
		t.Fatalf("expected progress_analysis intent, got %q", service.lastIntent)
	}
	if service.lastContext.TimeRange != models.TimeRange90Days {
		t.Fatalf("expected 90_days range, got %q", service.lastContext.TimeRange)
	}
}

func TestGetHistoryReturnsPaginatedRecords(t *testing.T) {
	service := &stubAdviceService{
		history: []models.AdvisorySuggestion{
			{UserID: 42, Intent: models.IntentWorkout, ResponseText: "plan"},
			{UserID: 42, Intent: models.IntentNutrition, ResponseText: "dieta"},
		},
	}
	app := newAdviceApp(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ai/history?page=1&limit=10", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Suggestions []models.AdvisorySuggestion `json:"suggestions"`
		Pagination  models.PaginationMeta       `json:"pagination"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(payload.Suggestions))
	}
	if payload.Pagination.Total != 2 || payload.Pagination.Limit != 10 {
		t.Fatalf("unexpected pagination %+v", payload.Pagination)
	}
}
