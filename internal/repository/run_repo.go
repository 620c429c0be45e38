// Package repository persists verification-run history.
package repository

import (
	"database/sql"
	"fmt"

	"github.com/aannayev/QaTask/internal/models"
)

// RunRepository handles database operations for verification runs.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a run repository over the given connection.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// SaveRun inserts a verification run.
func (r *RunRepository) SaveRun(run *models.VerificationRun) error {
	query := `
		INSERT INTO verification_runs (id, scenario, passed, order_number, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(query,
		run.ID,
		run.Scenario,
		run.Passed,
		run.OrderNumber,
		run.Details,
		run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save verification run: %w", err)
	}

	return nil
}

// GetRun retrieves a verification run by its identifier.
func (r *RunRepository) GetRun(id string) (*models.VerificationRun, error) {
	query := `
		SELECT id, scenario, passed, COALESCE(order_number, ''), COALESCE(details, ''), created_at
		FROM verification_runs
		WHERE id = $1
	`

	run := &models.VerificationRun{}
	err := r.db.QueryRow(query, id).Scan(
		&run.ID,
		&run.Scenario,
		&run.Passed,
		&run.OrderNumber,
		&run.Details,
		&run.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("verification run not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get verification run: %w", err)
	}

	return run, nil
}

// ListRuns returns the most recent runs for a scenario, newest first.
func (r *RunRepository) ListRuns(scenario string, limit int) ([]*models.VerificationRun, error) {
	query := `
		SELECT id, scenario, passed, COALESCE(order_number, ''), COALESCE(details, ''), created_at
		FROM verification_runs
		WHERE scenario = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(query, scenario, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list verification runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.VerificationRun
	for rows.Next() {
		run := &models.VerificationRun{}
		if err := rows.Scan(
			&run.ID,
			&run.Scenario,
			&run.Passed,
			&run.OrderNumber,
			&run.Details,
			&run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan verification run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read verification runs: %w", err)
	}

	return runs, nil
}
