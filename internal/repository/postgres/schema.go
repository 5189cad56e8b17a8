package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"nexus-asset-manager/internal/logger"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS assets (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		model         TEXT,
		serial_number TEXT,
		type          TEXT NOT NULL,
		status        TEXT NOT NULL,
		purchase_date DATE,
		price         NUMERIC(12, 2) NOT NULL DEFAULT 0,
		assigned_to   TEXT,
		notes         TEXT,
		renewal_date  DATE,
		billing_cycle TEXT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assets_created_at ON assets (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_assets_serial_number ON assets (serial_number)`,
	`CREATE TABLE IF NOT EXISTS documents (
		id            TEXT PRIMARY KEY,
		title         TEXT NOT NULL,
		category      TEXT NOT NULL,
		content       TEXT NOT NULL DEFAULT '',
		last_modified TIMESTAMPTZ NOT NULL DEFAULT now(),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the tables the server needs when they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schemaStatements {
		logger.DatabaseCall("ensure_schema", stmt)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.DatabaseResult("ensure_schema", 0, err, "statement", i)
			return fmt.Errorf("failed to apply schema statement %d: %w", i, err)
		}
	}
	logger.Info("Database schema ready")
	return nil
}
