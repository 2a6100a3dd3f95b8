package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateAccountsTable, downCreateAccountsTable)
}

// Accounts hold both roles in one table. A username is unique across the
// whole set, so the same name can never exist as both user and admin.
// Role changes have no endpoint; admins are promoted out-of-band.
func upCreateAccountsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE accounts (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  username TEXT UNIQUE NOT NULL,
	  password_hash TEXT NOT NULL,
	  role TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'admin')),
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateAccountsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS accounts;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
