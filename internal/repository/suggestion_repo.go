package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/marcela981/Somos-Server/internal/models"
)

type CreateSuggestionInput struct {
	ID           uuid.UUID
	UserID       int64
	Intent       models.AdvisoryIntent
	PromptText   string
	ResponseText string
	Context      []byte
}

// SuggestionRepository persists advisory audit records. Rows are write-once:
// there is no update or delete statement here on purpose.
type SuggestionRepository struct {
	db DBTX
}

func NewSuggestionRepository(db DBTX) *SuggestionRepository {
	return &SuggestionRepository{db: db}
}

func (r *SuggestionRepository) Insert(ctx context.Context, input CreateSuggestionInput) (*models.AdvisorySuggestion, error) {
	query := `
		INSERT INTO advisory_suggestions (id, user_id, intent, prompt_text, response_text, context)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, intent, prompt_text, response_text, context, created_at
	`
	var suggestion models.AdvisorySuggestion
	err := r.db.QueryRow(
		ctx,
		query,
		input.ID,
		input.UserID,
		string(input.Intent),
		input.PromptText,
		input.ResponseText,
		input.Context,
	).Scan(
		&suggestion.ID,
		&suggestion.UserID,
		&suggestion.Intent,
		&suggestion.PromptText,
		&suggestion.ResponseText,
		&suggestion.Context,
		&suggestion.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (r *SuggestionRepository) ListByUser(
	ctx context.Context,
	userID int64,
	limit, offset int,
) ([]models.AdvisorySuggestion, int, error) {
	totalQuery := `SELECT COUNT(*) FROM advisory_suggestions WHERE user_id = $1`
	var total int
	if err := r.db.QueryRow(ctx, totalQuery, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, user_id, intent, prompt_text, response_text, context, created_at
		FROM advisory_suggestions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	suggestions := make([]models.AdvisorySuggestion, 0)
	for rows.Next() {
		var suggestion models.AdvisorySuggestion
		if err := rows.Scan(
			&suggestion.ID,
			&suggestion.UserID,
			&suggestion.Intent,
			&suggestion.PromptText,
			&suggestion.ResponseText,
			&suggestion.Context,
			&suggestion.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		suggestions = append(suggestions, suggestion)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return suggestions, total, nil
}
