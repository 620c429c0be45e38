// Package browser adapts a Playwright page to the ui.Port consumed by the
// verification flow.
package browser

import (
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Session implements ui.Port over a single Playwright page. One session
// serves one workflow; independent sessions may run concurrently.
type Session struct {
	page    playwright.Page
	baseURL string
}

// NewSession wraps a page with base-URL-relative navigation.
func NewSession(page playwright.Page, baseURL string) *Session {
	return &Session{
		page:    page,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Page exposes the underlying page for callers that need direct access
// (screenshots, teardown).
func (s *Session) Page() playwright.Page {
	return s.page
}

func (s *Session) Navigate(path string) error {
	url := path
	if !strings.HasPrefix(path, "http") {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		url = s.baseURL + path
	}

	if _, err := s.page.Goto(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	if err := s.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("failed waiting for %s to load: %w", url, err)
	}
	return nil
}

// locator resolves a selector to its first match; the storefront renders
// duplicate widgets (e.g. paired add-to-cart buttons) and the first one is
// always the interactive instance.
func (s *Session) locator(selector string) playwright.Locator {
	return s.page.Locator(selector).First()
}

func (s *Session) Click(selector string) error {
	if err := s.locator(selector).Click(); err != nil {
		return fmt.Errorf("failed to click %s: %w", selector, err)
	}
	return nil
}

func (s *Session) SetValue(selector, value string) error {
	if err := s.locator(selector).Fill(value); err != nil {
		return fmt.Errorf("failed to fill %s: %w", selector, err)
	}
	return nil
}

func (s *Session) SelectByLabel(selector, label string) error {
	_, err := s.locator(selector).SelectOption(playwright.SelectOptionValues{
		Labels: &[]string{label},
	})
	if err != nil {
		return fmt.Errorf("failed to select %q in %s: %w", label, selector, err)
	}
	return nil
}

func (s *Session) Check(selector string) error {
	if err := s.locator(selector).Check(); err != nil {
		return fmt.Errorf("failed to check %s: %w", selector, err)
	}
	return nil
}

func (s *Session) ReadText(selector string) (string, error) {
	text, err := s.locator(selector).TextContent()
	if err != nil {
		return "", fmt.Errorf("failed to read text of %s: %w", selector, err)
	}
	return text, nil
}

func (s *Session) ReadValue(selector string) (string, error) {
	value, err := s.locator(selector).InputValue()
	if err != nil {
		return "", fmt.Errorf("failed to read value of %s: %w", selector, err)
	}
	return value, nil
}

func (s *Session) Count(selector string) (int, error) {
	count, err := s.page.Locator(selector).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", selector, err)
	}
	return count, nil
}

func (s *Session) WaitVisible(selector string, timeout time.Duration) bool {
	err := s.locator(selector).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	return err == nil
}

func (s *Session) IsVisible(selector string) bool {
	visible, err := s.locator(selector).IsVisible()
	return err == nil && visible
}

func (s *Session) Settle(d time.Duration) {
	time.Sleep(d)
}
