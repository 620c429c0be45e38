// Package report writes verification results to a JSON file.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aannayev/QaTask/internal/scenario"
)

// ScenarioResult is one scenario's outcome in the written report.
type ScenarioResult struct {
	Name        string   `json:"name"`
	Passed      bool     `json:"passed"`
	Skipped     bool     `json:"skipped,omitempty"`
	OrderNumber string   `json:"orderNumber,omitempty"`
	Notes       []string `json:"notes,omitempty"`
}

// RunReport is the document written after a verification run.
type RunReport struct {
	RunID      string           `json:"runId"`
	BaseURL    string           `json:"baseURL"`
	StartedAt  time.Time        `json:"startedAt"`
	FinishedAt time.Time        `json:"finishedAt"`
	Passed     bool             `json:"passed"`
	Scenarios  []ScenarioResult `json:"scenarios"`
}

// New creates a report shell for a run.
func New(runID, baseURL string, startedAt time.Time) *RunReport {
	return &RunReport{
		RunID:     runID,
		BaseURL:   baseURL,
		StartedAt: startedAt,
		Passed:    true,
	}
}

// Add appends a scenario result. A skipped scenario does not affect the
// overall pass flag; a failed one clears it.
func (r *RunReport) Add(res scenario.Report) {
	r.Scenarios = append(r.Scenarios, ScenarioResult{
		Name:        res.Scenario,
		Passed:      res.Passed,
		Skipped:     res.Skipped,
		OrderNumber: res.OrderNumber,
		Notes:       res.Notes,
	})
	if !res.Skipped && !res.Passed {
		r.Passed = false
	}
}

// Write finalizes the report and writes it to path.
func (r *RunReport) Write(path string) error {
	r.FinishedAt = time.Now()

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
