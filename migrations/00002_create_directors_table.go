package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateDirectorsTable, downCreateDirectorsTable)
}

func upCreateDirectorsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE directors (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  name TEXT NOT NULL,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateDirectorsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS directors;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
