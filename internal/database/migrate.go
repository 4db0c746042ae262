package database

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

const schemaVersion = 1

// Migrate applies the embedded schema when it has not been applied yet.
// It returns true when the schema was created by this call.
func Migrate(ctx context.Context, db *DB) (bool, error) {
	applied := false
	err := db.WithTransaction(ctx, func(ctx context.Context) error {
		conn := db.Conn(ctx)
		if _, err := conn.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
			return fmt.Errorf("failed to create schema_migrations: %w", err)
		}

		var count int
		if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM schema_migrations WHERE version = $1", schemaVersion).Scan(&count); err != nil {
			return fmt.Errorf("failed to read schema_migrations: %w", err)
		}
		if count > 0 {
			return nil
		}

		if _, err := conn.Exec(ctx, schemaSQL); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
		if _, err := conn.Exec(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", schemaVersion); err != nil {
			return fmt.Errorf("failed to record migration: %w", err)
		}
		applied = true
		return nil
	})
	return applied, err
}
