package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marcela981/Somos-Server/internal/models"
	"github.com/marcela981/Somos-Server/internal/services"
)

type stubAnalyticsService struct {
	lastRange models.TimeRange
	summary   *models.ProgressSummary
	goal      *models.CalorieGoal
	goalErr   error
}

func (s *stubAnalyticsService) ProgressSummary(_ context.Context, _ int64, timeRange models.TimeRange) (*models.ProgressSummary, error) {
	s.lastRange = timeRange
	return s.summary, nil
}

func (s *stubAnalyticsService) CalorieGoal(_ context.Context, _ int64) (*models.CalorieGoal, error) {
	if s.goalErr != nil {
		return nil, s.goalErr
	}
	return s.goal, nil
}

func TestGetProgressSummaryForwardsRange(t *testing.T) {
	service := &stubAnalyticsService{
		summary: &models.ProgressSummary{
			Range:  models.TimeRange7Days,
			Weight: models.TrendSummary{Direction: models.TrendStable},
		},
	}
	handler := NewAnalyticsHandler(service)

	app := newAuthedApp("42")
	app.Get("/api/v1/analytics/progress", handler.GetProgressSummary)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/progress?range=7_days", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastRange != models.TimeRange7Days {
		t.Fatalf("expected 7_days range, got %q", service.lastRange)
	}

	var payload models.ProgressSummary
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Range != models.TimeRange7Days {
		t.Fatalf("expected range echoed, got %q", payload.Range)
	}
}

func TestGetProgressSummaryRejectsUnknownRange(t *testing.T) {
	handler := NewAnalyticsHandler(&stubAnalyticsService{})

	app := newAuthedApp("42")
	app.Get("/api/v1/analytics/progress", handler.GetProgressSummary)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/progress?range=forever", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetCalorieGoalStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "ok", err: nil, want: http.StatusOK},
		{name: "user not found", err: services.ErrUserNotFound, want: http.StatusNotFound},
		{name: "incomplete profile", err: services.ErrIncompleteProfile, want: http.StatusBadRequest},
		{name: "downstream failure", err: context.DeadlineExceeded, want: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service := &stubAnalyticsService{
				goal:    &models.CalorieGoal{TargetCalories: 2200},
				goalErr: tc.err,
			}
			handler := NewAnalyticsHandler(service)

			app := newAuthedApp("42")
			app.Get("/api/v1/analytics/calorie-goal", handler.GetCalorieGoal)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/calorie-goal", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}
