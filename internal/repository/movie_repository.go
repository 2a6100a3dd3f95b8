package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"movie-catalog-service/internal/model"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *model.Movie) (*model.Movie, error)
	List(ctx context.Context) ([]model.Movie, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	ListByDirector(ctx context.Context, directorID uuid.UUID) ([]model.Movie, error)
	SearchByTitle(ctx context.Context, term string) ([]model.Movie, error)
	Update(ctx context.Context, id uuid.UUID, title string, directorID *uuid.UUID) (*model.Movie, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Movie, error)
}

type postgresMovieRepository struct {
	db *sqlx.DB
}

func NewPostgresMovieRepository(db *sqlx.DB) MovieRepository {
	return &postgresMovieRepository{db: db}
}

func (r *postgresMovieRepository) Create(ctx context.Context, movie *model.Movie) (*model.Movie, error) {
	query := `INSERT INTO movies (title, director_id) VALUES ($1, $2) RETURNING id, created_at`

	row := r.db.QueryRowxContext(ctx, query, movie.Title, movie.DirectorID)
	err := row.Scan(&movie.ID, &movie.CreatedAt)

	if err != nil {
		return nil, err
	}

	return movie, nil
}

func (r *postgresMovieRepository) List(ctx context.Context) ([]model.Movie, error) {
	movies := []model.Movie{}
	query := `SELECT id, title, director_id, rating, created_at FROM movies ORDER BY created_at`
	err := r.db.SelectContext(ctx, &movies, query)

	if err != nil {
		return nil, err
	}

	return movies, nil
}

func (r *postgresMovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	var movie model.Movie
	query := `SELECT id, title, director_id, rating, created_at FROM movies WHERE id = $1`
	err := r.db.GetContext(ctx, &movie, query, id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &movie, nil
}

func (r *postgresMovieRepository) ListByDirector(ctx context.Context, directorID uuid.UUID) ([]model.Movie, error) {
	movies := []model.Movie{}
	query := `SELECT id, title, director_id, rating, created_at FROM movies WHERE director_id = $1 ORDER BY created_at`
	err := r.db.SelectContext(ctx, &movies, query, directorID)

	if err != nil {
		return nil, err
	}

	return movies, nil
}

// SearchByTitle matches the term as a case-insensitive substring of the title.
func (r *postgresMovieRepository) SearchByTitle(ctx context.Context, term string) ([]model.Movie, error) {
	movies := []model.Movie{}
	query := `SELECT id, title, director_id, rating, created_at FROM movies WHERE title ILIKE $1 ORDER BY created_at`
	err := r.db.SelectContext(ctx, &movies, query, "%"+term+"%")

	if err != nil {
		return nil, err
	}

	return movies, nil
}

// Update returns nil when no row matched the id.
func (r *postgresMovieRepository) Update(ctx context.Context, id uuid.UUID, title string, directorID *uuid.UUID) (*model.Movie, error) {
	var movie model.Movie
	query := `UPDATE movies SET title = $1, director_id = $2 WHERE id = $3 RETURNING id, title, director_id, rating, created_at`
	err := r.db.GetContext(ctx, &movie, query, title, directorID, id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &movie, nil
}

// Delete returns the deleted row, or nil when no row matched the id.
func (r *postgresMovieRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	var movie model.Movie
	query := `DELETE FROM movies WHERE id = $1 RETURNING id, title, director_id, rating, created_at`
	err := r.db.GetContext(ctx, &movie, query, id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &movie, nil
}
