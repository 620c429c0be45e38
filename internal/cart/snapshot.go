// Package cart reads the storefront shopping cart into immutable snapshots
// and performs cart-page interactions.
package cart

// LineItem is one rendered cart row at the moment of a read.
type LineItem struct {
	Name      string
	UnitPrice float64
	Quantity  int
	Subtotal  float64
}

// Snapshot is a point-in-time read of the whole cart. Snapshots are value
// objects: every read builds a fresh one, and displayed values can change
// between checkout steps (shipping and tax appear only once an address is
// known), so callers never cache a snapshot across steps.
type Snapshot struct {
	Items    []LineItem
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}

// Empty reports whether the snapshot holds no line items.
func (s Snapshot) Empty() bool {
	return len(s.Items) == 0
}
