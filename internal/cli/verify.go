package cli

import (
	"fmt"
	"log"

	"github.com/aannayev/QaTask/internal/models"
	"github.com/aannayev/QaTask/internal/report"
	"github.com/aannayev/QaTask/internal/scenario"
)

// RunStore persists scenario outcomes. Nil disables persistence.
type RunStore interface {
	SaveRun(run *models.VerificationRun) error
}

// VerifyDependencies holds all dependencies needed to run verification scenarios
type VerifyDependencies struct {
	Runner *scenario.Runner
	Report *report.RunReport
	Store  RunStore
}

// RunVerify executes the full purchase-flow scenario: login, add products,
// reconcile the cart, drive checkout, and reconcile the confirm-step totals.
func RunVerify(deps VerifyDependencies) error {
	rep, err := deps.Runner.PlaceOrder()
	if err != nil {
		return fmt.Errorf("place-order scenario: %w", err)
	}
	return record(deps, rep)
}

// RunCart executes the cart-only scenarios: add the configured products, check
// line and total reconciliation, then bump the first row's quantity and check
// the re-rendered subtotal.
func RunCart(deps VerifyDependencies, quantity int) error {
	if err := deps.Runner.AddProducts(); err != nil {
		return fmt.Errorf("adding products: %w", err)
	}

	pricing, err := deps.Runner.VerifyCartPricing()
	if err != nil {
		return fmt.Errorf("cart-pricing scenario: %w", err)
	}
	if err := record(deps, pricing); err != nil {
		return err
	}

	update, err := deps.Runner.VerifyQuantityUpdate(0, quantity)
	if err != nil {
		return fmt.Errorf("quantity-update scenario: %w", err)
	}
	return record(deps, update)
}

func record(deps VerifyDependencies, rep scenario.Report) error {
	deps.Report.Add(rep)

	status := "PASS"
	switch {
	case rep.Skipped:
		status = "SKIP"
	case !rep.Passed:
		status = "FAIL"
	}
	log.Printf("scenario %s: %s", rep.Scenario, status)

	if deps.Store == nil || rep.Skipped {
		return nil
	}
	run, err := models.NewVerificationRun(rep.Scenario, rep.Passed, rep.OrderNumber, rep.Details())
	if err != nil {
		return fmt.Errorf("building run record: %w", err)
	}
	if err := deps.Store.SaveRun(run); err != nil {
		return fmt.Errorf("saving run record: %w", err)
	}
	return nil
}
