package cart

import (
	"testing"

	"github.com/aannayev/QaTask/internal/money"
	"github.com/aannayev/QaTask/internal/ui/uitest"
)

func scriptedCart(t *testing.T) *uitest.FakePort {
	t.Helper()

	port := uitest.NewFakePort()
	port.Visible[cartRegion] = true
	port.Counts[itemRow] = 2

	port.Texts[".cart-item-row >> nth=0 .product-name"] = "  Build your own computer  "
	port.Texts[".cart-item-row >> nth=0 .product-unit-price"] = "$1,200.00"
	port.Values[".cart-item-row >> nth=0 .qty-input"] = "1"
	port.Texts[".cart-item-row >> nth=0 .product-subtotal"] = "$1,200.00"

	port.Texts[".cart-item-row >> nth=1 .product-name"] = "14.1-inch Laptop"
	port.Texts[".cart-item-row >> nth=1 .product-unit-price"] = "$1,590.00"
	port.Values[".cart-item-row >> nth=1 .qty-input"] = "2"
	port.Texts[".cart-item-row >> nth=1 .product-subtotal"] = "$3,180.00"

	port.Visible[summarySubtotal] = true
	port.Texts[summarySubtotal] = "$4,380.00"
	port.Visible[summaryTotal] = true
	port.Texts[summaryTotal] = "$4,380.00"

	return port
}

func TestReader_Read(t *testing.T) {
	port := scriptedCart(t)
	reader := NewReader(port)

	snap, err := reader.Read()
	if err != nil {
		t.Fatalf("Read() unexpected error = %v", err)
	}

	if len(snap.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(snap.Items))
	}

	first := snap.Items[0]
	if first.Name != "Build your own computer" {
		t.Errorf("expected trimmed name, got %q", first.Name)
	}
	if !money.WithinTolerance(first.UnitPrice, 1200.00) {
		t.Errorf("expected unit price 1200.00, got %v", first.UnitPrice)
	}
	if first.Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", first.Quantity)
	}

	second := snap.Items[1]
	if second.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", second.Quantity)
	}
	if !money.WithinTolerance(second.Subtotal, 3180.00) {
		t.Errorf("expected subtotal 3180.00, got %v", second.Subtotal)
	}

	if !money.WithinTolerance(snap.Subtotal, 4380.00) {
		t.Errorf("expected summary subtotal 4380.00, got %v", snap.Subtotal)
	}
	if snap.Shipping != 0 || snap.Tax != 0 {
		t.Errorf("absent shipping/tax rows should read as 0, got %v / %v", snap.Shipping, snap.Tax)
	}
	if !money.WithinTolerance(snap.Total, 4380.00) {
		t.Errorf("expected total 4380.00, got %v", snap.Total)
	}
}

func TestReader_Read_EmptyCartRegion(t *testing.T) {
	port := uitest.NewFakePort()
	// Cart region marker not visible at all: an empty cart is a valid state.
	reader := NewReader(port)

	snap, err := reader.Read()
	if err != nil {
		t.Fatalf("Read() unexpected error = %v", err)
	}
	if !snap.Empty() {
		t.Error("expected an empty snapshot")
	}
	if snap.Subtotal != 0 || snap.Total != 0 {
		t.Errorf("expected zero totals, got subtotal=%v total=%v", snap.Subtotal, snap.Total)
	}
}

func TestReader_Read_UnparsableQuantityDefaultsToOne(t *testing.T) {
	port := scriptedCart(t)
	port.Counts[itemRow] = 1
	port.Values[".cart-item-row >> nth=0 .qty-input"] = "abc"

	reader := NewReader(port)
	snap, err := reader.Read()
	if err != nil {
		t.Fatalf("Read() unexpected error = %v", err)
	}
	if snap.Items[0].Quantity != 1 {
		t.Errorf("expected quantity to default to 1, got %d", snap.Items[0].Quantity)
	}
}

func TestReader_Read_ShippingAndTaxWhenRendered(t *testing.T) {
	port := scriptedCart(t)
	port.Visible[summaryShipping] = true
	port.Texts[summaryShipping] = "$10.00"
	port.Visible[summaryTax] = true
	port.Texts[summaryTax] = "$45.00"
	port.Texts[summaryTotal] = "$4,435.00"

	reader := NewReader(port)
	snap, err := reader.Read()
	if err != nil {
		t.Fatalf("Read() unexpected error = %v", err)
	}
	if !money.WithinTolerance(snap.Shipping, 10.00) {
		t.Errorf("expected shipping 10.00, got %v", snap.Shipping)
	}
	if !money.WithinTolerance(snap.Tax, 45.00) {
		t.Errorf("expected tax 45.00, got %v", snap.Tax)
	}
}

func TestReader_UpdateQuantity(t *testing.T) {
	port := scriptedCart(t)
	reader := NewReader(port)

	if err := reader.UpdateQuantity(0, 5); err != nil {
		t.Fatalf("UpdateQuantity() unexpected error = %v", err)
	}

	if got := port.SetCalls[".cart-item-row >> nth=0 .qty-input"]; got != "5" {
		t.Errorf("expected quantity field set to 5, got %q", got)
	}
	if len(port.Clicked) != 1 || port.Clicked[0] != updateCartButton {
		t.Errorf("expected update-cart click, got %v", port.Clicked)
	}
}

func TestReader_RemoveItem(t *testing.T) {
	port := scriptedCart(t)
	reader := NewReader(port)

	if err := reader.RemoveItem(1); err != nil {
		t.Fatalf("RemoveItem() unexpected error = %v", err)
	}

	want := `input[name="removefromcart"] >> nth=1`
	if len(port.Checks) != 1 || port.Checks[0] != want {
		t.Errorf("expected removal checkbox %q checked, got %v", want, port.Checks)
	}
	if len(port.Clicked) != 1 || port.Clicked[0] != updateCartButton {
		t.Errorf("expected update-cart click, got %v", port.Clicked)
	}
}

func TestReader_ApplyDiscountCode(t *testing.T) {
	port := scriptedCart(t)
	reader := NewReader(port)

	if err := reader.ApplyDiscountCode("WELCOME10"); err != nil {
		t.Fatalf("ApplyDiscountCode() unexpected error = %v", err)
	}

	if got := port.SetCalls[discountInput]; got != "WELCOME10" {
		t.Errorf("expected discount code entered, got %q", got)
	}
	if len(port.Clicked) != 1 || port.Clicked[0] != applyDiscount {
		t.Errorf("expected apply-discount click, got %v", port.Clicked)
	}
}

func TestReader_ProceedToCheckout(t *testing.T) {
	port := scriptedCart(t)
	reader := NewReader(port)

	if err := reader.ProceedToCheckout(); err != nil {
		t.Fatalf("ProceedToCheckout() unexpected error = %v", err)
	}

	if len(port.Checks) != 1 || port.Checks[0] != termsCheckbox {
		t.Errorf("expected terms checkbox to be checked, got %v", port.Checks)
	}
	if len(port.Clicked) != 1 || port.Clicked[0] != checkoutButton {
		t.Errorf("expected checkout click, got %v", port.Clicked)
	}
}
