package checkout

import (
	"github.com/aannayev/QaTask/internal/cart"
	"github.com/aannayev/QaTask/internal/money"
)

// Confirm-step order summary locators.
const (
	confirmSubtotal = ".cart-total .order-subtotal .product-price"
	confirmShipping = ".cart-total .shipping-cost .product-price"
	confirmTax      = ".cart-total .tax-value .product-price"
	confirmTotal    = ".cart-total .order-total .product-price"
)

// ConfirmTotals returns the order summary that was rendered on the confirm
// step, captured just before the final confirmation (the page navigates away
// afterwards). Line items are not repeated in that summary, so Items is
// empty; absent shipping and tax rows read as 0. The snapshot feeds the same
// total reconciliation as the cart page.
func (w *Workflow) ConfirmTotals() cart.Snapshot {
	return w.confirmTotals
}

func (w *Workflow) readConfirmTotals() cart.Snapshot {
	return cart.Snapshot{
		Subtotal: w.readAmount(confirmSubtotal),
		Shipping: w.readAmount(confirmShipping),
		Tax:      w.readAmount(confirmTax),
		Total:    w.readAmount(confirmTotal),
	}
}

func (w *Workflow) readAmount(locator string) float64 {
	if !w.port.IsVisible(locator) {
		return 0
	}
	text, err := w.port.ReadText(locator)
	if err != nil {
		return 0
	}
	return money.ParseAmount(text)
}
