package postgres

import (
	"context"
	"database/sql"
)

const favoritesSchemaSQL = `
CREATE TABLE IF NOT EXISTS favorites (
  event_id TEXT PRIMARY KEY,
  event    JSONB NOT NULL,
  added_at TIMESTAMPTZ NOT NULL
)
`

// EnsureSchema creates the favorites table if it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, favoritesSchemaSQL)
	return err
}
