package db

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Migrate runs all table creation statements. Safe to call multiple times
// due to IF NOT EXISTS clauses.
func Migrate(database *sql.DB) error {
	slog.Info("running database migrations")

	for _, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w\nstatement: %s", err, stmt)
		}
	}

	slog.Info("database migrations complete")
	return nil
}

var migrations = []string{
	// Key-value blob store; the invoice list lives under a single key as JSON.
	`CREATE TABLE IF NOT EXISTS store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}
