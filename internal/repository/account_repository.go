package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"movie-catalog-service/internal/model"
)

type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) (uuid.UUID, error)
	FindByUsername(ctx context.Context, username string) (*model.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
}

type postgresAccountRepository struct {
	db *sqlx.DB
}

func NewPostgresAccountRepository(db *sqlx.DB) AccountRepository {
	return &postgresAccountRepository{db: db}
}

func (r *postgresAccountRepository) Create(ctx context.Context, account *model.Account) (uuid.UUID, error) {
	query := `INSERT INTO accounts (username, password_hash, role) VALUES ($1, $2, $3) RETURNING id`
	var newID uuid.UUID
	err := r.db.QueryRowxContext(ctx, query, account.Username, account.PasswordHash, account.Role).Scan(&newID)

	if err != nil {
		return uuid.Nil, err
	}

	return newID, nil
}

func (r *postgresAccountRepository) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	var account model.Account
	query := `SELECT id, username, password_hash, role, created_at FROM accounts WHERE username = $1`
	err := r.db.GetContext(ctx, &account, query, username)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &account, nil
}

func (r *postgresAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	var account model.Account
	query := `SELECT id, username, password_hash, role, created_at FROM accounts WHERE id = $1`
	err := r.db.GetContext(ctx, &account, query, id)

	if err != nil {
		return nil, err
	}

	return &account, nil
}
