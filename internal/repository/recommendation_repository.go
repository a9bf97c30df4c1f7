package repository

import (
	"context"
	"fmt"
	"strings"

	"ecotrack/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var recommendationColumns = []string{
	"id", "user_id", "type", "title", "description", "impact", "confidence", "category",
	"reward_potential", "action_steps", "estimated_cost", "timeframe", "priority",
	"implemented", "dismissed", "implementation_notes", "created_at", "updated_at",
}

type RecommendationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewRecommendationRepository(db *pgxpool.Pool, logger *zap.Logger) *RecommendationRepository {
	return &RecommendationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *RecommendationRepository) Create(ctx context.Context, rec *models.Recommendation) error {
	sql, args, err := insertRecommendationQuery(rec).ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// List returns the user's recommendations newest first.
func (r *RecommendationRepository) List(ctx context.Context, userID uuid.UUID, filter models.RecommendationFilter) ([]*models.Recommendation, error) {
	sql, args, err := listRecommendationsQuery(userID, filter).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recommendations := []*models.Recommendation{}
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		recommendations = append(recommendations, rec)
	}

	return recommendations, rows.Err()
}

// UpdateStatus applies a lifecycle transition to a recommendation owned by
// userID in a single statement. ErrNotFound covers both a missing id and an
// id owned by someone else.
func (r *RecommendationRepository) UpdateStatus(ctx context.Context, userID, id uuid.UUID, update models.RecommendationUpdate) (*models.Recommendation, error) {
	sql, args, err := updateRecommendationStatusQuery(userID, id, update).ToSql()
	if err != nil {
		return nil, err
	}

	rec, err := scanRecommendation(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return rec, nil
}

func insertRecommendationQuery(rec *models.Recommendation) squirrel.InsertBuilder {
	return squirrel.Insert("recommendations").
		Columns(recommendationColumns...).
		Values(
			rec.ID, rec.UserID, rec.Type, rec.Title, rec.Description, rec.Impact, rec.Confidence, rec.Category,
			rec.RewardPotential, rec.ActionSteps, rec.EstimatedCost, rec.Timeframe, rec.Priority,
			rec.Implemented, rec.Dismissed, rec.ImplementationNotes, rec.CreatedAt, rec.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)
}

func listRecommendationsQuery(userID uuid.UUID, filter models.RecommendationFilter) squirrel.SelectBuilder {
	query := squirrel.Select(recommendationColumns...).
		From("recommendations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Type != nil {
		query = query.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.Implemented != nil {
		query = query.Where(squirrel.Eq{"implemented": *filter.Implemented})
	}
	if filter.Dismissed != nil {
		query = query.Where(squirrel.Eq{"dismissed": *filter.Dismissed})
	}
	return query
}

func updateRecommendationStatusQuery(userID, id uuid.UUID, update models.RecommendationUpdate) squirrel.UpdateBuilder {
	query := squirrel.Update("recommendations").
		Set("updated_at", update.UpdatedAt).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"user_id": userID}).
		Suffix(fmt.Sprintf("RETURNING %s", strings.Join(recommendationColumns, ", "))).
		PlaceholderFormat(squirrel.Dollar)

	if update.Implemented != nil {
		query = query.Set("implemented", *update.Implemented)
	}
	if update.Dismissed != nil {
		query = query.Set("dismissed", *update.Dismissed)
	}
	if update.ImplementationNotes != nil {
		query = query.Set("implementation_notes", *update.ImplementationNotes)
	}
	return query
}

func scanRecommendation(row scanner) (*models.Recommendation, error) {
	var rec models.Recommendation
	if err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Type, &rec.Title, &rec.Description, &rec.Impact, &rec.Confidence, &rec.Category,
		&rec.RewardPotential, &rec.ActionSteps, &rec.EstimatedCost, &rec.Timeframe, &rec.Priority,
		&rec.Implemented, &rec.Dismissed, &rec.ImplementationNotes, &rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}
