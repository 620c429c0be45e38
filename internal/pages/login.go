// Package pages holds the thin per-page locator catalogs for the storefront
// pages the verification flow touches outside of cart and checkout.
package pages

import (
	"fmt"
	"time"

	"github.com/aannayev/QaTask/internal/ui"
)

// Login page and header locators.
const (
	emailInput      = "#Email"
	passwordInput   = "#Password"
	loginButton     = "input.login-button"
	logoutLink      = "a.ico-logout"
	validationError = ".validation-summary-errors"
)

// LoginPage drives the storefront login form.
type LoginPage struct {
	port ui.Port
}

// NewLoginPage creates a login page over the given port.
func NewLoginPage(port ui.Port) *LoginPage {
	return &LoginPage{port: port}
}

// Open navigates to the login page.
func (p *LoginPage) Open() error {
	if err := p.port.Navigate("/login"); err != nil {
		return fmt.Errorf("failed to open login page: %w", err)
	}
	return nil
}

// Login submits the credential form.
func (p *LoginPage) Login(email, password string) error {
	if err := p.port.SetValue(emailInput, email); err != nil {
		return fmt.Errorf("failed to enter email: %w", err)
	}
	if err := p.port.SetValue(passwordInput, password); err != nil {
		return fmt.Errorf("failed to enter password: %w", err)
	}
	if err := p.port.Click(loginButton); err != nil {
		return fmt.Errorf("failed to submit login form: %w", err)
	}
	return nil
}

// LoggedIn waits for the header logout link that only renders for an
// authenticated session.
func (p *LoginPage) LoggedIn(timeout time.Duration) bool {
	return p.port.WaitVisible(logoutLink, timeout)
}

// ValidationError returns the login form's validation summary, or an empty
// string when none is shown.
func (p *LoginPage) ValidationError() string {
	if !p.port.IsVisible(validationError) {
		return ""
	}
	text, err := p.port.ReadText(validationError)
	if err != nil {
		return ""
	}
	return text
}
