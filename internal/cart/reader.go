package cart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aannayev/QaTask/internal/money"
	"github.com/aannayev/QaTask/internal/ui"
)

// Cart page locators for the demo storefront.
const (
	itemRow          = ".cart-item-row"
	itemName         = ".product-name"
	itemUnitPrice    = ".product-unit-price"
	itemQuantity     = ".qty-input"
	itemSubtotal     = ".product-subtotal"
	summarySubtotal  = ".order-subtotal .product-price"
	summaryShipping  = ".shipping-cost .product-price"
	summaryTax       = ".tax-value .product-price"
	summaryTotal     = ".order-total .product-price"
	cartRegion       = ".cart"
	removeCheckbox   = `input[name="removefromcart"]`
	updateCartButton = `input[name="updatecart"]`
	termsCheckbox    = "#termsofservice"
	checkoutButton   = "#checkout"
	discountInput    = "#discountcouponcode"
	applyDiscount    = `input[name="applydiscountcouponcode"]`
)

// Reader builds cart snapshots and drives cart-page actions through a UI
// port.
type Reader struct {
	port ui.Port
}

// NewReader creates a cart reader over the given port.
func NewReader(port ui.Port) *Reader {
	return &Reader{port: port}
}

// Open navigates to the cart page.
func (r *Reader) Open() error {
	if err := r.port.Navigate("/cart"); err != nil {
		return fmt.Errorf("failed to open cart page: %w", err)
	}
	return nil
}

// Read builds a snapshot of the currently rendered cart. An absent cart
// region means an empty cart, which is a valid state, so it yields an empty
// snapshot rather than an error. Unparsable prices degrade to 0 and
// unparsable quantities to 1 so that bad values surface as reconciliation
// failures instead of crashes.
func (r *Reader) Read() (Snapshot, error) {
	var snap Snapshot

	if !r.port.IsVisible(cartRegion) {
		return snap, nil
	}

	count, err := r.port.Count(itemRow)
	if err != nil {
		return snap, fmt.Errorf("failed to count cart rows: %w", err)
	}

	for i := 0; i < count; i++ {
		item, err := r.readRow(i)
		if err != nil {
			return snap, err
		}
		snap.Items = append(snap.Items, item)
	}

	snap.Subtotal = r.readSummary(summarySubtotal)
	// Shipping and tax rows are not rendered before an address is known;
	// absence reads as 0.
	snap.Shipping = r.readSummary(summaryShipping)
	snap.Tax = r.readSummary(summaryTax)
	snap.Total = r.readSummary(summaryTotal)

	return snap, nil
}

func (r *Reader) readRow(index int) (LineItem, error) {
	row := fmt.Sprintf("%s >> nth=%d", itemRow, index)

	name, err := r.port.ReadText(row + " " + itemName)
	if err != nil {
		return LineItem{}, fmt.Errorf("failed to read name of cart row %d: %w", index, err)
	}

	priceText, err := r.port.ReadText(row + " " + itemUnitPrice)
	if err != nil {
		return LineItem{}, fmt.Errorf("failed to read unit price of cart row %d: %w", index, err)
	}

	qtyText, err := r.port.ReadValue(row + " " + itemQuantity)
	if err != nil {
		return LineItem{}, fmt.Errorf("failed to read quantity of cart row %d: %w", index, err)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(qtyText))
	if err != nil || quantity < 1 {
		quantity = 1
	}

	subtotalText, err := r.port.ReadText(row + " " + itemSubtotal)
	if err != nil {
		return LineItem{}, fmt.Errorf("failed to read subtotal of cart row %d: %w", index, err)
	}

	return LineItem{
		Name:      strings.TrimSpace(name),
		UnitPrice: money.ParseAmount(priceText),
		Quantity:  quantity,
		Subtotal:  money.ParseAmount(subtotalText),
	}, nil
}

func (r *Reader) readSummary(locator string) float64 {
	if !r.port.IsVisible(locator) {
		return 0
	}
	text, err := r.port.ReadText(locator)
	if err != nil {
		return 0
	}
	return money.ParseAmount(text)
}

// UpdateQuantity sets the quantity of the row at index and submits the cart
// update. Rendered row order after the re-render is not guaranteed to match
// the order before it; callers should re-read.
func (r *Reader) UpdateQuantity(index, quantity int) error {
	row := fmt.Sprintf("%s >> nth=%d %s", itemRow, index, itemQuantity)
	if err := r.port.SetValue(row, strconv.Itoa(quantity)); err != nil {
		return fmt.Errorf("failed to set quantity on cart row %d: %w", index, err)
	}
	if err := r.port.Click(updateCartButton); err != nil {
		return fmt.Errorf("failed to update cart: %w", err)
	}
	return nil
}

// RemoveItem marks the row at index for removal and submits the cart update.
func (r *Reader) RemoveItem(index int) error {
	box := fmt.Sprintf("%s >> nth=%d", removeCheckbox, index)
	if err := r.port.Check(box); err != nil {
		return fmt.Errorf("failed to mark cart row %d for removal: %w", index, err)
	}
	if err := r.port.Click(updateCartButton); err != nil {
		return fmt.Errorf("failed to update cart: %w", err)
	}
	return nil
}

// ApplyDiscountCode enters and applies a discount coupon code.
func (r *Reader) ApplyDiscountCode(code string) error {
	if err := r.port.SetValue(discountInput, code); err != nil {
		return fmt.Errorf("failed to enter discount code: %w", err)
	}
	if err := r.port.Click(applyDiscount); err != nil {
		return fmt.Errorf("failed to apply discount code: %w", err)
	}
	return nil
}

// ProceedToCheckout accepts the terms of service and opens the checkout
// wizard.
func (r *Reader) ProceedToCheckout() error {
	if err := r.port.Check(termsCheckbox); err != nil {
		return fmt.Errorf("failed to accept terms of service: %w", err)
	}
	if err := r.port.Click(checkoutButton); err != nil {
		return fmt.Errorf("failed to proceed to checkout: %w", err)
	}
	return nil
}
