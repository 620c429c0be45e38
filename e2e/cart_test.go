package e2e

import (
	"testing"

	"github.com/aannayev/QaTask/internal/scenario"
)

// TestCartPricingReconciliation tests cart price arithmetic
// Feature: Cart Reconciliation
//
//	As a shopper
//	I want every cart row and the order total to add up
//	So that I am charged what the product pages promised
func TestCartPricingReconciliation(t *testing.T) {
	// Scenario: Add the data-file products and reconcile the cart
	//   Given the configured products are in my cart
	//   When I read the cart page
	//   Then each row subtotal should equal unit price × quantity
	//   And the displayed total should equal subtotal + shipping + tax

	port := newPort(t)
	runner := scenario.NewRunner(port, nil, cfg)

	// Given the configured products are in my cart
	if err := runner.AddProducts(); err != nil {
		t.Fatalf("Failed to add products: %v", err)
	}

	// When I read the cart page / Then the invariants should hold
	rep, err := runner.VerifyCartPricing()
	if err != nil {
		t.Fatalf("Cart pricing scenario failed: %v", err)
	}
	if !rep.Passed {
		t.Errorf("Cart reconciliation failed:\n%s", rep.Details())
	}
}

// TestCartQuantityUpdate tests subtotal recalculation after a quantity change
// Feature: Cart Reconciliation
//
//	Scenario: Update a row quantity
//	  Given a product is in my cart
//	  When I change its quantity and update the cart
//	  Then the re-rendered subtotal should equal unit price × new quantity
func TestCartQuantityUpdate(t *testing.T) {
	port := newPort(t)
	runner := scenario.NewRunner(port, nil, cfg)

	// Given a product is in my cart
	if err := runner.AddProducts(); err != nil {
		t.Fatalf("Failed to add products: %v", err)
	}

	// When I change its quantity / Then the subtotal should follow
	rep, err := runner.VerifyQuantityUpdate(0, 3)
	if err != nil {
		t.Fatalf("Quantity update scenario failed: %v", err)
	}
	if !rep.Passed {
		t.Errorf("Quantity update reconciliation failed:\n%s", rep.Details())
	}
}
