package database

import (
	"database/sql"
	"fmt"
	"log"
)

// RunMigrations creates the run-history tables.
func RunMigrations(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("database connection not initialized")
	}

	createRunsTable := `
	CREATE TABLE IF NOT EXISTS verification_runs (
		id UUID PRIMARY KEY,
		scenario VARCHAR(255) NOT NULL,
		passed BOOLEAN NOT NULL,
		order_number VARCHAR(255),
		details TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_verification_runs_scenario ON verification_runs(scenario);
	CREATE INDEX IF NOT EXISTS idx_verification_runs_created_at ON verification_runs(created_at);
	`

	if _, err := db.Exec(createRunsTable); err != nil {
		return fmt.Errorf("failed to create verification_runs table: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
