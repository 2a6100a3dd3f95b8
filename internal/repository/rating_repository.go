package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"movie-catalog-service/internal/model"
)

type RatingRepository interface {
	// Upsert records the rating for (account, movie) and returns the
	// movie's recomputed mean rating.
	Upsert(ctx context.Context, accountID, movieID uuid.UUID, rating int) (float64, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]model.Rating, error)
}

type postgresRatingRepository struct {
	db *sqlx.DB
}

func NewPostgresRatingRepository(db *sqlx.DB) RatingRepository {
	return &postgresRatingRepository{db: db}
}

// Upsert inserts or overwrites the caller's rating and recomputes the
// movie's denormalized mean in the same transaction, so a concurrent
// submission never observes a rating without its updated mean. Returns
// sql.ErrNoRows when the movie does not exist; the transaction is rolled
// back and no orphan rating row survives.
func (r *postgresRatingRepository) Upsert(ctx context.Context, accountID, movieID uuid.UUID, rating int) (float64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	upsert := `
		INSERT INTO ratings (account_id, movie_id, rating)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_id, movie_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = now()
	`
	if _, err := tx.ExecContext(ctx, upsert, accountID, movieID, rating); err != nil {
		return 0, err
	}

	recompute := `
		UPDATE movies
		SET rating = (SELECT AVG(rating) FROM ratings WHERE movie_id = $1)
		WHERE id = $1
		RETURNING rating
	`
	var mean float64
	if err := tx.GetContext(ctx, &mean, recompute, movieID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return mean, nil
}

func (r *postgresRatingRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]model.Rating, error) {
	ratings := []model.Rating{}
	query := `SELECT id, account_id, movie_id, rating, created_at, updated_at FROM ratings WHERE account_id = $1 ORDER BY updated_at DESC`
	err := r.db.SelectContext(ctx, &ratings, query, accountID)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return ratings, nil
}
