// Package checkout drives the storefront's multi-step checkout wizard to
// completion. Step presence is only partially deterministic: the server
// collapses or auto-advances steps depending on account state and cart
// contents, so every continue action is guarded by a bounded existence check.
package checkout

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aannayev/QaTask/internal/cart"
	"github.com/aannayev/QaTask/internal/models"
	"github.com/aannayev/QaTask/internal/ui"
)

// Step identifies one stage of the checkout wizard, in wizard order.
type Step string

const (
	StepBillingAddress  Step = "billing address"
	StepShippingAddress Step = "shipping address"
	StepShippingMethod  Step = "shipping method"
	StepPaymentMethod   Step = "payment method"
	StepPaymentInfo     Step = "payment info"
	StepConfirmOrder    Step = "confirm order"
)

// stepResult is the tri-state outcome of acting on one step. Skip and
// failure are deliberately distinct: an absent continue control usually means
// the server already satisfied the step.
type stepResult int

const (
	stepActed stepResult = iota
	stepSkipped
	stepFailed
)

// Checkout wizard locators.
const (
	billingFirstName   = "#BillingNewAddress_FirstName"
	billingLastName    = "#BillingNewAddress_LastName"
	billingEmail       = "#BillingNewAddress_Email"
	billingCompany     = "#BillingNewAddress_Company"
	billingCountry     = "#BillingNewAddress_CountryId"
	billingState       = "#BillingNewAddress_StateProvinceId"
	billingCity        = "#BillingNewAddress_City"
	billingAddress1    = "#BillingNewAddress_Address1"
	billingAddress2    = "#BillingNewAddress_Address2"
	billingZip         = "#BillingNewAddress_ZipPostalCode"
	billingPhone       = "#BillingNewAddress_PhoneNumber"
	billingFax         = "#BillingNewAddress_FaxNumber"
	billingDropdown    = "#billing-address-select"
	billingDropdownOpt = "#billing-address-select option"

	shipToSameAddress = "#ShipToSameAddress"

	billingContinue        = `#billing-buttons-container input[type="button"]`
	shippingContinue       = `#shipping-buttons-container input[type="button"]`
	shippingMethodContinue = `#shipping-method-buttons-container input[type="button"]`
	paymentMethodContinue  = `#payment-method-buttons-container input[type="button"]`
	paymentInfoContinue    = `#payment-info-buttons-container input[type="button"]`
	confirmOrderButton     = `#confirm-order-buttons-container input[type="button"]`

	shippingMethodRadio = `input[name="shippingoption"] >> nth=0`
	paymentMethodRadio  = `input[name="paymentmethod"] >> nth=0`

	billingStep = "#opc-billing"

	successMarker      = ".section.order-completed"
	orderNumberElement = ".order-number strong"

	newAddressLabel = "New Address"
)

// Errors surfaced by the workflow. Transient timing (an expected continue
// control never appearing) is tolerated and does not produce an error.
var (
	ErrBillingFieldAbsent = errors.New("billing form is visible but a required field is missing")
	ErrStepFailed         = errors.New("checkout step failed")
)

// Waits groups the bounded wait budgets used by the workflow. A zero value
// in any field falls back to its default.
type Waits struct {
	// Step bounds the wait for a step's continue control.
	Step time.Duration
	// Settle is the fixed delay after interactions that trigger an
	// asynchronous re-render with no readiness signal.
	Settle time.Duration
	// Confirm bounds the wait for the terminal success marker.
	Confirm time.Duration
}

// DefaultWaits mirrors the storefront's observed render timing.
func DefaultWaits() Waits {
	return Waits{
		Step:    10 * time.Second,
		Settle:  500 * time.Millisecond,
		Confirm: 15 * time.Second,
	}
}

func (w Waits) withDefaults() Waits {
	d := DefaultWaits()
	if w.Step == 0 {
		w.Step = d.Step
	}
	if w.Settle == 0 {
		w.Settle = d.Settle
	}
	if w.Confirm == 0 {
		w.Confirm = d.Confirm
	}
	return w
}

// Workflow walks the checkout wizard once, front to back. Transitions are
// one-directional with no backtracking and no retries beyond the single
// bounded wait per step. A Workflow drives one UI session; independent
// workflows over separate sessions may run concurrently.
type Workflow struct {
	port    ui.Port
	clock   ui.Clock
	waits   Waits
	outcome *OutcomeReader

	confirmTotals cart.Snapshot
}

// New creates a workflow over the given port.
func New(port ui.Port, clock ui.Clock, waits Waits) *Workflow {
	if clock == nil {
		clock = ui.SystemClock{}
	}
	return &Workflow{
		port:    port,
		clock:   clock,
		waits:   waits.withDefaults(),
		outcome: NewOutcomeReader(port),
	}
}

// Run drives the wizard with the given billing address and returns the
// terminal order outcome. A never-appearing success marker is not an error:
// it yields an outcome with Succeeded false and the caller decides whether
// that fails the scenario.
func (w *Workflow) Run(addr models.Address) (models.OrderOutcome, error) {
	if !w.port.WaitVisible(billingStep, w.waits.Step) {
		return models.OrderOutcome{}, fmt.Errorf("%w: checkout wizard did not load", ErrStepFailed)
	}

	if err := w.billingAddress(addr); err != nil {
		return models.OrderOutcome{}, err
	}
	if err := w.shippingAddress(); err != nil {
		return models.OrderOutcome{}, err
	}
	if err := w.shippingMethod(); err != nil {
		return models.OrderOutcome{}, err
	}
	if err := w.paymentMethod(); err != nil {
		return models.OrderOutcome{}, err
	}
	if err := w.paymentInfo(); err != nil {
		return models.OrderOutcome{}, err
	}
	if err := w.confirmOrder(); err != nil {
		return models.OrderOutcome{}, err
	}

	return w.outcome.Read(), nil
}

// billingAddress fills and submits the billing step. When the saved-address
// dropdown is present the "New Address" option is selected; the server may
// respond by hiding the detail form entirely (it decided to reuse a saved
// address), in which case population is skipped.
func (w *Workflow) billingAddress(addr models.Address) error {
	if w.port.IsVisible(billingDropdown) {
		if n, err := w.port.Count(billingDropdownOpt); err == nil && n > 1 {
			if err := w.port.SelectByLabel(billingDropdown, newAddressLabel); err != nil {
				return fmt.Errorf("%w: %s: selecting new address: %v", ErrStepFailed, StepBillingAddress, err)
			}
			w.port.Settle(w.waits.Settle)
		}
	}

	if w.port.IsVisible(billingFirstName) {
		if err := w.fillBillingForm(addr); err != nil {
			return err
		}
	}

	if res, err := w.continueStep(StepBillingAddress, billingContinue); res == stepFailed {
		return err
	}
	return nil
}

func (w *Workflow) fillBillingForm(addr models.Address) error {
	if err := addr.Validate(); err != nil {
		return fmt.Errorf("cannot fill billing form: %w", err)
	}

	required := map[string]string{
		billingFirstName: addr.FirstName,
		billingLastName:  addr.LastName,
		billingEmail:     addr.Email,
		billingCity:      addr.City,
		billingAddress1:  addr.Address1,
		billingZip:       addr.Zip,
		billingPhone:     addr.Phone,
	}
	for locator := range required {
		if !w.port.IsVisible(locator) {
			return fmt.Errorf("%w: %s", ErrBillingFieldAbsent, locator)
		}
	}

	for _, field := range []struct {
		locator string
		value   string
	}{
		{billingFirstName, addr.FirstName},
		{billingLastName, addr.LastName},
		{billingEmail, addr.Email},
		{billingCompany, addr.Company},
		{billingCity, addr.City},
		{billingAddress1, addr.Address1},
		{billingAddress2, addr.Address2},
		{billingZip, addr.Zip},
		{billingPhone, addr.Phone},
		{billingFax, addr.Fax},
	} {
		if field.value == "" {
			continue
		}
		if err := w.port.SetValue(field.locator, field.value); err != nil {
			return fmt.Errorf("%w: %s: filling %s: %v", ErrStepFailed, StepBillingAddress, field.locator, err)
		}
	}

	// Country must be chosen before state: the state dropdown is repopulated
	// by the country selection and there is no readiness signal to wait on.
	if err := w.port.SelectByLabel(billingCountry, addr.Country); err != nil {
		return fmt.Errorf("%w: %s: selecting country: %v", ErrStepFailed, StepBillingAddress, err)
	}
	w.port.Settle(w.waits.Settle)

	if addr.State != "" && w.port.IsVisible(billingState) {
		if err := w.port.SelectByLabel(billingState, addr.State); err != nil {
			return fmt.Errorf("%w: %s: selecting state: %v", ErrStepFailed, StepBillingAddress, err)
		}
	}

	return nil
}

// shippingAddress handles the ship-to-same-address step. The indicator is
// pre-selected by the storefront when present, so the step reduces to its
// continue action.
func (w *Workflow) shippingAddress() error {
	if res, err := w.continueStep(StepShippingAddress, shippingContinue); res == stepFailed {
		return err
	}
	return nil
}

func (w *Workflow) shippingMethod() error {
	if err := w.selectFirstAvailable(StepShippingMethod, shippingMethodRadio); err != nil {
		return err
	}
	if res, err := w.continueStep(StepShippingMethod, shippingMethodContinue); res == stepFailed {
		return err
	}
	return nil
}

func (w *Workflow) paymentMethod() error {
	if err := w.selectFirstAvailable(StepPaymentMethod, paymentMethodRadio); err != nil {
		return err
	}
	if res, err := w.continueStep(StepPaymentMethod, paymentMethodContinue); res == stepFailed {
		return err
	}
	return nil
}

// paymentInfo submits the payment-info step without populating any fields;
// the flow assumes a no-field payment method such as check or money order.
func (w *Workflow) paymentInfo() error {
	if res, err := w.continueStep(StepPaymentInfo, paymentInfoContinue); res == stepFailed {
		return err
	}
	return nil
}

func (w *Workflow) confirmOrder() error {
	// The order summary disappears with the confirm navigation; capture it
	// first so the caller can reconcile the confirm-step totals afterwards.
	w.confirmTotals = w.readConfirmTotals()

	res, err := w.continueStep(StepConfirmOrder, confirmOrderButton)
	if res == stepFailed {
		return err
	}

	if ok := ui.Await(func() bool {
		return w.port.IsVisible(successMarker)
	}, w.waits.Confirm, w.clock); !ok {
		log.Printf("checkout: success marker not visible after %s", w.waits.Confirm)
	}
	return nil
}

// selectFirstAvailable checks the first offered option of a method step.
// Which options the server renders varies with cart contents, so the policy
// is first-available rather than cheapest or named-match. An absent option
// list means the server skipped the step.
func (w *Workflow) selectFirstAvailable(step Step, radio string) error {
	if !w.port.WaitVisible(radio, w.waits.Step) {
		log.Printf("checkout: %s offers no options, treating as already satisfied", step)
		return nil
	}
	if err := w.port.Check(radio); err != nil {
		return fmt.Errorf("%w: %s: selecting first option: %v", ErrStepFailed, step, err)
	}
	return nil
}

// continueStep triggers a step's continue control under the bounded wait. An
// absent control is a skip, not an error: the server collapses steps it has
// already satisfied. A click that errors is a failure.
func (w *Workflow) continueStep(step Step, control string) (stepResult, error) {
	if !w.port.WaitVisible(control, w.waits.Step) {
		log.Printf("checkout: %s continue control absent, treating step as already satisfied", step)
		return stepSkipped, nil
	}

	if err := w.port.Click(control); err != nil {
		return stepFailed, fmt.Errorf("%w: %s: continue: %v", ErrStepFailed, step, err)
	}
	w.port.Settle(w.waits.Settle)
	return stepActed, nil
}
