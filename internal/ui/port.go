package ui

import "time"

// Port is the browser capability surface the verification flow drives.
// Implementations talk to a real page (see internal/browser); tests substitute
// scripted fakes.
type Port interface {
	// Navigate opens a path relative to the configured base URL.
	Navigate(path string) error

	// Click clicks the first element matching the locator.
	Click(locator string) error

	// SetValue clears a text input and types the given value.
	SetValue(locator, value string) error

	// SelectByLabel picks a dropdown option by its visible label.
	SelectByLabel(locator, label string) error

	// Check checks a radio button or checkbox.
	Check(locator string) error

	// ReadText returns the rendered text content of an element.
	ReadText(locator string) (string, error)

	// ReadValue returns the current value of an input element.
	ReadValue(locator string) (string, error)

	// Count returns the number of elements matching the locator.
	Count(locator string) (int, error)

	// WaitVisible waits for an element to become visible. It returns false on
	// timeout and never returns an error; absent elements are a normal
	// condition for conditionally rendered steps.
	WaitVisible(locator string, timeout time.Duration) bool

	// IsVisible reports whether an element is currently visible.
	IsVisible(locator string) bool

	// Settle sleeps for a fixed duration. The storefront re-renders fragments
	// asynchronously with no readiness signal, so some interactions are
	// followed by a settle delay.
	Settle(d time.Duration)
}
