package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"movie-catalog-service/internal/model"
)

type DirectorRepository interface {
	Create(ctx context.Context, director *model.Director) (*model.Director, error)
	List(ctx context.Context) ([]model.Director, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Director, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*model.Director, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Director, error)
}

type postgresDirectorRepository struct {
	db *sqlx.DB
}

func NewPostgresDirectorRepository(db *sqlx.DB) DirectorRepository {
	return &postgresDirectorRepository{db: db}
}

func (r *postgresDirectorRepository) Create(ctx context.Context, director *model.Director) (*model.Director, error) {
	query := `INSERT INTO directors (name) VALUES ($1) RETURNING id, created_at`

	row := r.db.QueryRowxContext(ctx, query, director.Name)
	err := row.Scan(&director.ID, &director.CreatedAt)

	if err != nil {
		return nil, err
	}

	return director, nil
}

func (r *postgresDirectorRepository) List(ctx context.Context) ([]model.Director, error) {
	directors := []model.Director{}
	query := `SELECT id, name, created_at FROM directors ORDER BY created_at`
	err := r.db.SelectContext(ctx, &directors, query)

	if err != nil {
		return nil, err
	}

	return directors, nil
}

func (r *postgresDirectorRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Director, error) {
	var director model.Director
	query := `SELECT id, name, created_at FROM directors WHERE id = $1`
	err := r.db.GetContext(ctx, &director, query, id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &director, nil
}

// Update returns nil when no row matched the id.
func (r *postgresDirectorRepository) Update(ctx context.Context, id uuid.UUID, name string) (*model.Director, error) {
	var director model.Director
	query := `UPDATE directors SET name = $1 WHERE id = $2 RETURNING id, name, created_at`
	err := r.db.GetContext(ctx, &director, query, name, id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &director, nil
}

// Delete returns the deleted row, or nil when no row matched the id.
func (r *postgresDirectorRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Director, error) {
	var director model.Director
	query := `DELETE FROM directors WHERE id = $1 RETURNING id, name, created_at`
	err := r.db.GetContext(ctx, &director, query, id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &director, nil
}
