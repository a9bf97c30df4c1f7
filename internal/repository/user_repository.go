package repository

import (
	"context"

	"ecotrack/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var userColumns = []string{
	"id", "username", "email", "password", "location", "lifestyle", "preferences", "budget", "created_at", "updated_at",
}

type UserRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	lifestyle, preferences := nonNil(user.Lifestyle), nonNil(user.Preferences)
	query := squirrel.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Email, user.Password, user.Location, lifestyle, preferences,
			user.Budget, user.CreatedAt, user.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// FindUserWithPreferences loads the stored profile fields used to build
// recommendation prompts.
func (r *UserRepository) FindUserWithPreferences(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.GetByID(ctx, id)
}

func (r *UserRepository) UpdatePreferences(ctx context.Context, user *models.User) error {
	query := squirrel.Update("users").
		Set("location", user.Location).
		Set("lifestyle", nonNil(user.Lifestyle)).
		Set("preferences", nonNil(user.Preferences)).
		Set("budget", user.Budget).
		Set("updated_at", user.UpdatedAt).
		Where(squirrel.Eq{"id": user.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.User, error) {
	query := squirrel.Select(userColumns...).
		From("users").
		Where(where).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user models.User
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.Location, &user.Lifestyle,
		&user.Preferences, &user.Budget, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, mapNoRows(err)
	}

	return &user, nil
}

// nonNil keeps NOT NULL text[] columns from receiving a SQL NULL.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
