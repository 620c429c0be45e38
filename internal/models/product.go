package models

import "errors"

// ProductOptions is the sparse set of configurable attributes a product page
// may expose. Every field is optional; options the current product does not
// offer are silently skipped when applied.
type ProductOptions struct {
	Processor string   `json:"processor,omitempty"`
	Memory    string   `json:"ram,omitempty"`
	Storage   string   `json:"hdd,omitempty"`
	OS        string   `json:"os,omitempty"`
	Software  []string `json:"software,omitempty"`
}

// ProductSelection describes one product to purchase: where to find it, how
// many, and which options to pick.
type ProductSelection struct {
	Name      string          `json:"name"`
	Category  string          `json:"category,omitempty"`
	URL       string          `json:"url"`
	BasePrice float64         `json:"basePrice,omitempty"`
	Quantity  int             `json:"quantity"`
	Options   *ProductOptions `json:"options,omitempty"`
}

var (
	ErrMissingProductURL = errors.New("product URL cannot be empty")
	ErrInvalidQuantity   = errors.New("product quantity must be positive")
)

// Validate checks the selection is usable.
func (p ProductSelection) Validate() error {
	if p.URL == "" {
		return ErrMissingProductURL
	}
	if p.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}
