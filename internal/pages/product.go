package pages

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aannayev/QaTask/internal/models"
	"github.com/aannayev/QaTask/internal/money"
	"github.com/aannayev/QaTask/internal/ui"
)

// Product page locators.
const (
	productTitle    = ".product-name h1"
	productPrice    = ".product-price"
	quantityInput   = ".add-to-cart input.qty-input"
	addToCartButton = `input[id^="add-to-cart-button"]`
	notificationBar = "#bar-notification"
	notificationMsg = "#bar-notification .content"

	processorSelect = `select[id^="product_attribute"] >> nth=0`
	memorySelect    = `select[id^="product_attribute"] >> nth=1`

	addedMessage = "the product has been added"

	settleDelay = 500 * time.Millisecond
)

// optionKind classifies the widget a configurable product attribute renders
// as.
type optionKind int

const (
	kindSelect optionKind = iota
	kindRadio
	kindCheckbox
)

// productOption maps one attribute of the options payload to its widget.
type productOption struct {
	name    string
	kind    optionKind
	locator string
	values  func(models.ProductOptions) []string
}

// The option catalog. The payload is duck-typed against the current product:
// each entry applies independently and no-ops when the product does not
// expose that widget.
var productOptions = []productOption{
	{
		name:    "processor",
		kind:    kindSelect,
		locator: processorSelect,
		values:  func(o models.ProductOptions) []string { return []string{o.Processor} },
	},
	{
		name:    "memory",
		kind:    kindSelect,
		locator: memorySelect,
		values:  func(o models.ProductOptions) []string { return []string{o.Memory} },
	},
	{
		name:   "storage",
		kind:   kindRadio,
		values: func(o models.ProductOptions) []string { return []string{o.Storage} },
	},
	{
		name:   "operating system",
		kind:   kindRadio,
		values: func(o models.ProductOptions) []string { return []string{o.OS} },
	},
	{
		name:   "software",
		kind:   kindCheckbox,
		values: func(o models.ProductOptions) []string { return o.Software },
	},
}

// ProductPage drives a single product's detail page, including configurable
// attribute selection.
type ProductPage struct {
	port ui.Port

	appliers map[optionKind]func(p *ProductPage, opt productOption, value string) error
}

// NewProductPage creates a product page over the given port.
func NewProductPage(port ui.Port) *ProductPage {
	p := &ProductPage{port: port}
	p.appliers = map[optionKind]func(*ProductPage, productOption, string) error{
		kindSelect:   (*ProductPage).applySelect,
		kindRadio:    (*ProductPage).applyLabelled,
		kindCheckbox: (*ProductPage).applyLabelled,
	}
	return p
}

// Open navigates to a product detail page.
func (p *ProductPage) Open(url string) error {
	if err := p.port.Navigate(url); err != nil {
		return fmt.Errorf("failed to open product page %s: %w", url, err)
	}
	return nil
}

// Name returns the rendered product title.
func (p *ProductPage) Name() (string, error) {
	text, err := p.port.ReadText(productTitle)
	if err != nil {
		return "", fmt.Errorf("failed to read product title: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// Price returns the rendered product price.
func (p *ProductPage) Price() (float64, error) {
	text, err := p.port.ReadText(productPrice)
	if err != nil {
		return 0, fmt.Errorf("failed to read product price: %w", err)
	}
	return money.ParseAmount(text), nil
}

// SetQuantity fills the order quantity field.
func (p *ProductPage) SetQuantity(quantity int) error {
	if err := p.port.SetValue(quantityInput, strconv.Itoa(quantity)); err != nil {
		return fmt.Errorf("failed to set product quantity: %w", err)
	}
	return nil
}

// ApplyOptions applies a sparse options payload through the option catalog.
// Options the current product does not expose are silently skipped; the
// price fragment re-renders after selections, so a settle delay follows.
func (p *ProductPage) ApplyOptions(opts *models.ProductOptions) error {
	if opts == nil {
		return nil
	}

	for _, opt := range productOptions {
		apply := p.appliers[opt.kind]
		for _, value := range opt.values(*opts) {
			if value == "" {
				continue
			}
			if err := apply(p, opt, value); err != nil {
				return fmt.Errorf("failed to apply %s option %q: %w", opt.name, value, err)
			}
		}
	}

	p.port.Settle(settleDelay)
	return nil
}

func (p *ProductPage) applySelect(opt productOption, value string) error {
	if !p.port.IsVisible(opt.locator) {
		return nil
	}
	return p.port.SelectByLabel(opt.locator, value)
}

// applyLabelled handles radio and checkbox attributes, which are located by
// their rendered label text rather than a stable id.
func (p *ProductPage) applyLabelled(opt productOption, value string) error {
	label := fmt.Sprintf(`.attributes label:has-text(%q)`, value)
	if !p.port.IsVisible(label) {
		return nil
	}
	return p.port.Click(label)
}

// AddToCart submits the add-to-cart form.
func (p *ProductPage) AddToCart() error {
	if err := p.port.Click(addToCartButton); err != nil {
		return fmt.Errorf("failed to click add to cart: %w", err)
	}
	return nil
}

// Added waits for the notification bar and reports whether it confirms the
// product was added.
func (p *ProductPage) Added(timeout time.Duration) bool {
	if !p.port.WaitVisible(notificationBar, timeout) {
		return false
	}
	text, err := p.port.ReadText(notificationMsg)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(text), addedMessage)
}
