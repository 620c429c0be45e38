// Package uitest provides a scripted ui.Port for unit tests.
package uitest

import (
	"fmt"
	"time"
)

// FakePort is a scripted ui.Port. Maps hold the page state a test wants to
// present; func fields override individual operations when a test needs
// behavior beyond static state.
type FakePort struct {
	Texts   map[string]string
	Values  map[string]string
	Visible map[string]bool
	Counts  map[string]int

	NavigateFunc func(path string) error
	ClickFunc    func(locator string) error
	CheckFunc    func(locator string) error

	Navigations []string
	Clicked     []string
	SetCalls    map[string]string
	Selections  map[string]string
	Checks      []string
	Settled     time.Duration
}

// NewFakePort creates an empty fake port.
func NewFakePort() *FakePort {
	return &FakePort{
		Texts:      map[string]string{},
		Values:     map[string]string{},
		Visible:    map[string]bool{},
		Counts:     map[string]int{},
		SetCalls:   map[string]string{},
		Selections: map[string]string{},
	}
}

func (f *FakePort) Navigate(path string) error {
	f.Navigations = append(f.Navigations, path)
	if f.NavigateFunc != nil {
		return f.NavigateFunc(path)
	}
	return nil
}

func (f *FakePort) Click(locator string) error {
	f.Clicked = append(f.Clicked, locator)
	if f.ClickFunc != nil {
		return f.ClickFunc(locator)
	}
	return nil
}

func (f *FakePort) SetValue(locator, value string) error {
	f.SetCalls[locator] = value
	return nil
}

func (f *FakePort) SelectByLabel(locator, label string) error {
	f.Selections[locator] = label
	return nil
}

func (f *FakePort) Check(locator string) error {
	f.Checks = append(f.Checks, locator)
	if f.CheckFunc != nil {
		return f.CheckFunc(locator)
	}
	return nil
}

func (f *FakePort) ReadText(locator string) (string, error) {
	text, ok := f.Texts[locator]
	if !ok {
		return "", fmt.Errorf("no text scripted for locator %q", locator)
	}
	return text, nil
}

func (f *FakePort) ReadValue(locator string) (string, error) {
	value, ok := f.Values[locator]
	if !ok {
		return "", fmt.Errorf("no value scripted for locator %q", locator)
	}
	return value, nil
}

func (f *FakePort) Count(locator string) (int, error) {
	return f.Counts[locator], nil
}

func (f *FakePort) WaitVisible(locator string, timeout time.Duration) bool {
	return f.Visible[locator]
}

func (f *FakePort) IsVisible(locator string) bool {
	return f.Visible[locator]
}

func (f *FakePort) Settle(d time.Duration) {
	f.Settled += d
}
