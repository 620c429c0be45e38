package e2e

import (
	"testing"

	"github.com/aannayev/QaTask/internal/pages"
)

// TestProductPageAddToCart tests adding a configured product to the cart
// Feature: Product Configuration
//
//	As a shopper
//	I want to configure a product and add it to my cart
//	So that the cart reflects my selection
func TestProductPageAddToCart(t *testing.T) {
	// Scenario: Configure and add the first data-file product
	//   Given I am on the product page
	//   When I apply the configured options and quantity
	//   And I add the product to the cart
	//   Then the success notification should appear

	port := newPort(t)
	product := pages.NewProductPage(port)
	selection := cfg.Products[0]

	// Given I am on the product page
	if err := product.Open(selection.URL); err != nil {
		t.Fatalf("Failed to open product page: %v", err)
	}

	name, err := product.Name()
	if err != nil {
		t.Fatalf("Failed to read product name: %v", err)
	}
	if name != selection.Name {
		t.Errorf("Expected product name %q, got %q", selection.Name, name)
	}

	price, err := product.Price()
	if err != nil {
		t.Fatalf("Failed to read product price: %v", err)
	}
	if price <= 0 {
		t.Errorf("Expected a positive displayed price, got %v", price)
	}

	// When I apply the configured options and quantity
	if err := product.ApplyOptions(selection.Options); err != nil {
		t.Fatalf("Failed to apply product options: %v", err)
	}
	if err := product.SetQuantity(selection.Quantity); err != nil {
		t.Fatalf("Failed to set quantity: %v", err)
	}

	// And I add the product to the cart
	if err := product.AddToCart(); err != nil {
		t.Fatalf("Failed to add product to cart: %v", err)
	}

	// Then the success notification should appear
	if !product.Added(cfg.Waits.Step()) {
		t.Error("Add-to-cart notification did not appear")
	}
}
