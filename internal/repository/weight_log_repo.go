package repository

import (
	"context"
	"time"

	"github.com/marcela981/Somos-Server/internal/models"
)

// LogListFilter bounds a log listing. Since is the inclusive lower bound on
// logged_at; nil means unbounded.
type LogListFilter struct {
	Since  *time.Time
	Limit  int
	Offset int
}

type CreateWeightLogInput struct {
	UserID     int64
	LoggedAt   time.Time
	WeightKG   float64
	BodyFatPct *float64
}

type WeightLogRepository struct {
	db DBTX
}

func NewWeightLogRepository(db DBTX) *WeightLogRepository {
	return &WeightLogRepository{db: db}
}

func (r *WeightLogRepository) Create(ctx context.Context, input CreateWeightLogInput) (*models.WeightLog, error) {
	query := `
		INSERT INTO weight_logs (user_id, logged_at, weight_kg, body_fat_pct)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, logged_at, weight_kg, body_fat_pct, created_at
	`
	var log models.WeightLog
	err := r.db.QueryRow(
		ctx,
		query,
		input.UserID,
		input.LoggedAt.UTC(),
		input.WeightKG,
		input.BodyFatPct,
	).Scan(
		&log.ID,
		&log.UserID,
		&log.LoggedAt,
		&log.WeightKG,
		&log.BodyFatPct,
		&log.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *WeightLogRepository) ListByUser(
	ctx context.Context,
	userID int64,
	filter LogListFilter,
) ([]models.WeightLog, int, error) {
	totalQuery := `
		SELECT COUNT(*)
		FROM weight_logs
		WHERE user_id = $1 AND ($2::timestamptz IS NULL OR logged_at >= $2)
	`
	var total int
	if err := r.db.QueryRow(ctx, totalQuery, userID, filter.Since).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, user_id, logged_at, weight_kg, body_fat_pct, created_at
		FROM weight_logs
		WHERE user_id = $1 AND ($2::timestamptz IS NULL OR logged_at >= $2)
		ORDER BY logged_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, userID, filter.Since, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	logs := make([]models.WeightLog, 0)
	for rows.Next() {
		var log models.WeightLog
		if err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.LoggedAt,
			&log.WeightKG,
			&log.BodyFatPct,
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
func (r *WeightLogRepository) ListSince(
	ctx context.Context,
	userID int64,
	since *time.Time,
) ([]models.WeightLog, error) {
	query := `
		SELECT id, user_id, logged_at, weight_kg, body_fat_pct, created_at
		FROM weight_logs
		WHERE user_id = $1 AND ($2::timestamptz IS NULL OR logged_at >= $2)
		ORDER BY logged_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.WeightLog, 0)
	for rows.Next() {
		var log models.WeightLog
		if err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.LoggedAt,
			&log.WeightKG,
			&log.BodyFatPct,
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
