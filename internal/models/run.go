package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// VerificationRun records one execution of a verification scenario for the
// optional run-history store.
type VerificationRun struct {
	ID          string
	Scenario    string
	Passed      bool
	OrderNumber string
	Details     string
	CreatedAt   time.Time
}

var ErrMissingScenario = errors.New("scenario name cannot be empty")

// NewVerificationRun creates a run record with a fresh identifier.
func NewVerificationRun(scenario string, passed bool, orderNumber, details string) (*VerificationRun, error) {
	if scenario == "" {
		return nil, ErrMissingScenario
	}

	return &VerificationRun{
		ID:          uuid.New().String(),
		Scenario:    scenario,
		Passed:      passed,
		OrderNumber: orderNumber,
		Details:     details,
		CreatedAt:   time.Now(),
	}, nil
}
