//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"github.com/aannayev/QaTask/internal/models"
	"github.com/aannayev/QaTask/internal/repository/testutil"
	"github.com/google/uuid"
)

func TestRunRepository_SaveRun_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewRunRepository(testDB.DB)

	tests := []struct {
		name    string
		run     *models.VerificationRun
		wantErr bool
	}{
		{
			name: "save passing run",
			run: &models.VerificationRun{
				ID:          uuid.New().String(),
				Scenario:    "place-order",
				Passed:      true,
				OrderNumber: "1445123",
				Details:     "all invariants held",
				CreatedAt:   time.Now(),
			},
			wantErr: false,
		},
		{
			name: "save failing run without order number",
			run: &models.VerificationRun{
				ID:        uuid.New().String(),
				Scenario:  "cart-pricing",
				Passed:    false,
				Details:   "Sneakers: 45.00 × 5 = 225.00 (actual: 220.00) - ✗",
				CreatedAt: time.Now(),
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.SaveRun(tt.run)

			if (err != nil) != tt.wantErr {
				t.Errorf("SaveRun() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				saved, err := repo.GetRun(tt.run.ID)
				if err != nil {
					t.Fatalf("GetRun() error = %v", err)
				}
				if saved.Scenario != tt.run.Scenario {
					t.Errorf("expected scenario %s, got %s", tt.run.Scenario, saved.Scenario)
				}
				if saved.Passed != tt.run.Passed {
					t.Errorf("expected passed %v, got %v", tt.run.Passed, saved.Passed)
				}
				if saved.OrderNumber != tt.run.OrderNumber {
					t.Errorf("expected order number %q, got %q", tt.run.OrderNumber, saved.OrderNumber)
				}
			}
		})
	}
}

func TestRunRepository_ListRuns_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewRunRepository(testDB.DB)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		run := &models.VerificationRun{
			ID:        uuid.New().String(),
			Scenario:  "place-order",
			Passed:    i%2 == 0,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() error = %v", err)
		}
	}

	runs, err := repo.ListRuns("place-order", 2)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].CreatedAt.Before(runs[1].CreatedAt) {
		t.Error("expected newest run first")
	}

	if runs, err := repo.ListRuns("unknown-scenario", 10); err != nil || len(runs) != 0 {
		t.Errorf("expected no runs for unknown scenario, got %d (err %v)", len(runs), err)
	}
}
