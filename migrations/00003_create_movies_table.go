package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateMoviesTable, downCreateMoviesTable)
}

func upCreateMoviesTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE movies (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  title TEXT NOT NULL,
	  director_id UUID REFERENCES directors(id) ON DELETE SET NULL,
	  -- denormalized mean of all ratings, NULL until the first rating
	  rating NUMERIC(3,2),
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE INDEX idx_movies_director_id ON movies(director_id);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateMoviesTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS movies;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
