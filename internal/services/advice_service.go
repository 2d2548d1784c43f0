package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/marcela981/Somos-Server/internal/models"
	"github.com/marcela981/Somos-Server/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidIntent = errors.New("invalid advisory intent")
)

type advisoryProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error)
}

type weightLogReader interface {
	ListSince(ctx context.Context, userID int64, since *time.Time) ([]models.WeightLog, error)
}

type workoutLogReader interface {
	ListSince(ctx context.Context, userID int64, since *time.Time) ([]models.WorkoutLog, error)
}

type nutritionLogReader interface {
	ListSince(ctx context.Context, userID int64, since *time.Time) ([]models.NutritionLog, error)
}

type suggestionStore interface {
	Insert(ctx context.Context, input repository.CreateSuggestionInput) (*models.AdvisorySuggestion, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.AdvisorySuggestion, int, error)
}

// AdviceService runs the advisory flow: resolve profile, gather history,
// compute trends, build the prompt, invoke the gateway, persist the audit
// record, shape the response. Only ErrUserNotFound and ErrInvalidIntent
// escape to callers; everything downstream degrades.
type AdviceService struct {
	profileRepo   advisoryProfileReader
	weightLogs    weightLogReader
	workoutLogs   workoutLogReader
	nutritionLogs nutritionLogReader
	suggestions   suggestionStore
	gateway       AdvisoryGateway
	log           zerolog.Logger
}

func NewAdviceService(
	profileRepo advisoryProfileReader,
	weightLogs weightLogReader,
	workoutLogs workoutLogReader,
	nutritionLogs nutritionLogReader,
	suggestions suggestionStore,
	gateway AdvisoryGateway,
	log zerolog.Logger,
) *AdviceService {
	return &AdviceService{
		profileRepo:   profileRepo,
		weightLogs:    weightLogs,
		workoutLogs:   workoutLogs,
		nutritionLogs: nutritionLogs,
		suggestions:   suggestions,
		gateway:       gateway,
		log:           log,
	}
}

// AdviceContext carries the caller-supplied parameters for one advisory
// request. Only the variant matching the intent is consulted.
type AdviceContext struct {
	TimeRange  models.TimeRange
	Workout    *WorkoutParams
	Nutrition  *NutritionParams
	Motivation *MotivationParams
}

const (
	trendKeyWeight   = "weight"
	trendKeyStrength = "strength"
	trendKeyCalories = "calories"
)

func (s *AdviceService) GetAdvice(
	ctx context.Context,
	userID int64,
	intent models.AdvisoryIntent,
	adviceCtx AdviceContext,
) (*models.AdviceResponse, error) {
	switch intent {
	case models.IntentWorkout, models.IntentNutrition, models.IntentProgressAnalysis, models.IntentMotivation:
	default:
		return nil, ErrInvalidIntent
	}

	// Profile resolution happens before any gateway call or write.
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve profile: %w", err)
	}

	timeRange := adviceCtx.TimeRange
	if timeRange == "" {
		timeRange = models.TimeRangeAll
	}
	since := timeRange.WindowStart(time.Now().UTC())

	trends, err := s.gatherTrends(ctx, userID, intent, since)
	if err != nil {
		return nil, fmt.Errorf("gather logs: %w", err)
	}

	promptCtx := PromptContext{Trends: trends}
	switch intent {
	case models.IntentWorkout:
		promptCtx.Workout = adviceCtx.Workout
	case models.IntentNutrition:
		promptCtx.Nutrition = adviceCtx.Nutrition
	case models.IntentProgressAnalysis:
		promptCtx.Progress = &ProgressParams{TimeRange: timeRange}
	case models.IntentMotivation:
		promptCtx.Motivation = adviceCtx.Motivation
	}

	prompt, err := BuildPrompt(intent, profile, promptCtx)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	result := s.gateway.Invoke(ctx, intent, prompt)
	if result.Source == GatewaySourceFallback {
		s.log.Info().
			Int64("user_id", userID).
			Str("intent", string(intent)).
			Msg("advisory response served from fallback")
	}

	s.persistSuggestion(ctx, userID, intent, prompt, result, promptCtx)

	return &models.AdviceResponse{
		Recommendation: result.Text,
		SupportingData: models.AdviceSupportingData{
			Trend:   supportingTrend(intent, trends),
			Profile: profileEcho(profile),
		},
	}, nil
}

// GetHistory pages through the write-once suggestion records, newest first.
func (s *AdviceService) GetHistory(
	ctx context.Context,
	userID int64,
	limit, offset int,
) ([]models.AdvisorySuggestion, int, error) {
	return s.suggestions.ListByUser(ctx, userID, limit, offset)
}

// gatherTrends fetches the log history an intent needs and summarizes it.
// Workout and motivation requests skip the fetch entirely.
func (s *AdviceService) gatherTrends(
	ctx context.Context,
	userID int64,
	intent models.AdvisoryIntent,
	since *time.Time,
) (map[string]models.TrendSummary, error) {
	switch intent {
	case models.IntentProgressAnalysis:
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
			return nil, err
		}
		return map[string]models.TrendSummary{
			trendKeyWeight:   ComputeTrend(weightTrendPoints(weightLogs)),
			trendKeyStrength: ComputeTrend(strengthTrendPoints(workoutLogs)),
			trendKeyCalories: ComputeTrend(calorieTrendPoints(nutritionLogs)),
		}, nil
	case models.IntentNutrition:
		nutritionLogs, err := s.nutritionLogs.ListSince(ctx, userID, since)
		if err != nil {
			return nil, err
		}
		return map[string]models.TrendSummary{
			trendKeyCalories: ComputeTrend(calorieTrendPoints(nutritionLogs)),
		}, nil
	default:
		return nil, nil
	}
}

// persistSuggestion writes the audit record. A failed write is logged and
// swallowed: the advice is more valuable delivered than perfectly audited.
func (s *AdviceService) persistSuggestion(
	ctx context.Context,
	userID int64,
	intent models.AdvisoryIntent,
	prompt string,
	result GatewayResult,
	promptCtx PromptContext,
) {
	contextJSON, err := json.Marshal(promptCtx)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", userID).Msg("failed to marshal suggestion context")
		contextJSON = []byte(`{}`)
	}

	_, err = s.suggestions.Insert(ctx, repository.CreateSuggestionInput{
		ID:           uuid.New(),
		UserID:       userID,
		Intent:       intent,
		PromptText:   prompt,
		ResponseText: result.Text,
		Context:      contextJSON,
	})
	if err != nil {
		s.log.Warn().
			Err(err).
			Int64("user_id", userID).
			Str("intent", string(intent)).
			Str("source", string(result.Source)).
			Msg("failed to persist advisory suggestion")
	}
}

func supportingTrend(intent models.AdvisoryIntent, trends map[string]models.TrendSummary) *models.TrendSummary {
	var key string
	switch intent {
	case models.IntentProgressAnalysis:
		key = trendKeyWeight
	case models.IntentNutrition:
		key = trendKeyCalories
	default:
		return nil
	}
	trend, ok := trends[key]
	if !ok {
		return nil
	}
	return &trend
}

func profileEcho(profile *models.UserProfile) models.ProfileEcho {
	echo := models.ProfileEcho{
		Name:            notSpecified,
		Goal:            notSpecified,
		ExperienceLevel: notSpecified,
	}
	if profile.FullName != nil && *profile.FullName != "" {
		echo.Name = *profile.FullName
	}
	if profile.Goal != nil && *profile.Goal != "" {
		echo.Goal = *profile.Goal
	}
	if profile.ExperienceLevel != nil && *profile.ExperienceLevel != "" {
		echo.ExperienceLevel = *profile.ExperienceLevel
	}
	return echo
}

func weightTrendPoints(logs []models.WeightLog) []models.TrendPoint {
	points := make([]models.TrendPoint, 0, len(logs))
	for _, log := range logs {
		points = append(points, models.TrendPoint{Timestamp: log.LoggedAt, Value: log.WeightKG})
	}
	return points
}

func strengthTrendPoints(logs []models.WorkoutLog) []models.TrendPoint {
	points := make([]models.TrendPoint, 0, len(logs))
	for _, log := range logs {
		if log.WeightLiftedKG == nil {
			continue
		}
		points = append(points, models.TrendPoint{Timestamp: log.LoggedAt, Value: *log.WeightLiftedKG})
	}
	return points
}

func calorieTrendPoints(logs []models.NutritionLog) []models.TrendPoint {
	points := make([]models.TrendPoint, 0, len(logs))
	for _, log := range logs {
		points = append(points, models.TrendPoint{Timestamp: log.LoggedAt, Value: log.Calories})
	}
	return points
}
