package repository

import (
	"context"
	"time"

	"github.com/marcela981/Somos-Server/internal/models"
)

type CreateWorkoutLogInput struct {
	UserID          int64
	LoggedAt        time.Time
	ExerciseName    string
	Sets            int
	Reps            int
	WeightLiftedKG  *float64
	DurationMinutes *int
	Feedback        *string
}

type WorkoutLogRepository struct {
	db DBTX
}

func NewWorkoutLogRepository(db DBTX) *WorkoutLogRepository {
	return &WorkoutLogRepository{db: db}
}

func (r *WorkoutLogRepository) Create(ctx context.Context, input CreateWorkoutLogInput) (*models.WorkoutLog, error) {
	query := `
		INSERT INTO workout_logs (user_id, logged_at, exercise_name, sets, reps, weight_lifted_kg, duration_minutes, feedback)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, logged_at, exercise_name, sets, reps, weight_lifted_kg, duration_minutes, feedback, created_at
	`
	var log models.WorkoutLog
	err := r.db.QueryRow(
		ctx,
		query,
		input.UserID,
		input.LoggedAt.UTC(),
		input.ExerciseName,
		input.Sets,
		input.Reps,
		input.WeightLiftedKG,
		input.DurationMinutes,
		input.Feedback,
	).Scan(
		&log.ID,
		&log.UserID,
		&log.LoggedAt,
		&log.ExerciseName,
		&log.Sets,
		&log.Reps,
		&log.WeightLiftedKG,
		&log.DurationMinutes,
		&log.Feedback,
		&log.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *WorkoutLogRepository) ListByUser(
	ctx context.Context,
	userID int64,
	filter LogListFilter,
) ([]models.WorkoutLog, int, error) {
	totalQuery := `
		SELECT COUNT(*)
		FROM workout_logs
		WHERE user_id = $1 AND ($2::timestamptz IS NULL OR logged_at >= $2)
	`
	var total int
	if err := r.db.QueryRow(ctx, totalQuery, userID, filter.Since).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, user_id, logged_at, exercise_name, sets, reps, weight_lifted_kg, duration_minutes, feedback, created_at
		FROM workout_logs
		WHERE user_id = $1 AND ($2::timestamptz IS NULL OR logged_at >= $2)
		ORDER BY logged_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, userID, filter.Since, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	logs := make([]models.WorkoutLog, 0)
	for rows.Next() {
		var log models.WorkoutLog
		if err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.LoggedAt,
			&log.ExerciseName,
			&log.Sets,
			&log.Reps,
			&log.WeightLiftedKG,
			&log.DurationMinutes,
			&log.Feedback,
			&log.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// ListSince returns the full window oldest-first for the calculators.
func (r *WorkoutLogRepository) ListSince(
	ctx context.Context,
	userID int64,
	since *time.Time,
) ([]models.WorkoutLog, error) {
	query := `
		SELECT id, user_id, logged_at, exercise_name, sets, reps, weight_lifted_kg, duration_minutes, feedback, created_at
		FROM workout_logs
		WHERE user_id = $1 AND ($2::timestamptz IS NULL OR logged_at >= $2)
		ORDER BY logged_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.WorkoutLog, 0)
	for rows.Next() {
		var log models.WorkoutLog
		if err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.LoggedAt,
			&log.ExerciseName,
			&log.Sets,
			&log.Reps,
			&log.WeightLiftedKG,
			&log.DurationMinutes,
			&log.Feedback,
			&log.CreatedAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
