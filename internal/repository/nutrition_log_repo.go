package repository

import (
	"context"
	"time"

	"github.com/marcela981/Somos-Server/internal/models"
)

type CreateNutritionLogInput struct {
	UserID   int64
	LoggedAt time.Time
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
	WaterML  float64
}

type NutritionLogRepository struct {
	db DBTX
}

func NewNutritionLogRepository(db DBTX) *NutritionLogRepository {
	return &NutritionLogRepository{db: db}
}

func (r *NutritionLogRepository) Create(ctx context.Context, input CreateNutritionLogInput) (*models.NutritionLog, error) {
	query := `
		INSERT INTO nutrition_logs (user_id, logged_at, calories, protein_g, carbs_g, fat_g, water_ml)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, logged_at, calories, protein_g, carbs_g, fat_g, water_ml, created_at
	`
	var log models.NutritionLog
	err := r.db.QueryRow(
		ctx,
		query,
		input.UserID,
		input.LoggedAt.UTC(),
		input.Calories,
		input.ProteinG,
		input.CarbsG,
		input.FatG,
		input.WaterML,
	).Scan(
		&log.ID,
		&log.UserID,
		&log.LoggedAt,
		&log.Calories,
		&log.ProteinG,
		&log.CarbsG,
		&log.FatG,
		&log.WaterML,
		&log.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *NutritionLogRepository) ListByUser(
	ctx context.Context,
	userID int64,
	filter LogListFilter,
) ([]models.NutritionLog, int, error) {
	totalQuery := `
		SELECT COUNT(*)
		FROM nutrition_logs
		WHERE user_id = $1 AND ($2::timestamptz IS NULL OR logged_at >= $2)
	`
	var total int
	if err := r.db.QueryRow(ctx, totalQuery, userID, filter.Since).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, user_id, logged_at, calories, protein_g, carbs_g, fat_g, water_ml, created_at
		FROM nutrition_logs
		WHERE user_id = $1 AND ($2::timestamptz IS NULL OR logged_at >= $2)
		ORDER BY logged_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, userID, filter.Since, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	logs := make([]models.NutritionLog, 0)
	for rows.Next() {
		var log models.NutritionLog
		if err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.LoggedAt,
			&log.Calories,
			&log.ProteinG,
			&log.CarbsG,
			&log.FatG,
			&log.WaterML,
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
func (r *NutritionLogRepository) ListSince(
	ctx context.Context,
	userID int64,
	since *time.Time,
) ([]models.NutritionLog, error) {
	query := `
		SELECT id, user_id, logged_at, calories, protein_g, carbs_g, fat_g, water_ml, created_at
		FROM nutrition_logs
		WHERE user_id = $1 AND ($2::timestamptz IS NULL OR logged_at >= $2)
		ORDER BY logged_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.NutritionLog, 0)
	for rows.Next() {
		var log models.NutritionLog
		if err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.LoggedAt,
			&log.Calories,
			&log.ProteinG,
			&log.CarbsG,
			&log.FatG,
			&log.WaterML,
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
