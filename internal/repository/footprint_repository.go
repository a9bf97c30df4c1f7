package repository

import (
	"context"

	"ecotrack/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var footprintColumns = []string{
	"id", "user_id", "total_emissions", "transportation", "energy", "food", "waste", "created_at",
}

type FootprintRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewFootprintRepository(db *pgxpool.Pool, logger *zap.Logger) *FootprintRepository {
	return &FootprintRepository{
		db:     db,
		logger: logger,
	}
}

func (r *FootprintRepository) Create(ctx context.Context, fp *models.Footprint) error {
	query := squirrel.Insert("footprints").
		Columns(footprintColumns...).
		Values(fp.ID, fp.UserID, fp.TotalEmissions, fp.Transportation, fp.Energy, fp.Food, fp.Waste, fp.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// FindLatestFootprint returns ErrNotFound when the user has no snapshot yet.
func (r *FootprintRepository) FindLatestFootprint(ctx context.Context, userID uuid.UUID) (*models.Footprint, error) {
	sql, args, err := latestFootprintQuery(userID).ToSql()
	if err != nil {
		return nil, err
	}

	var fp models.Footprint
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&fp.ID, &fp.UserID, &fp.TotalEmissions, &fp.Transportation, &fp.Energy, &fp.Food, &fp.Waste, &fp.CreatedAt,
	)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &fp, nil
}

func latestFootprintQuery(userID uuid.UUID) squirrel.SelectBuilder {
	return squirrel.Select(footprintColumns...).
		From("footprints").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)
}
