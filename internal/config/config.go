// Package config loads the static verification data (products, address,
// method preferences) and the credential pair used by checkout scenarios.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aannayev/QaTask/internal/models"
)

// DefaultBaseURL is the storefront under verification.
const DefaultBaseURL = "https://demowebshop.tricentis.com"

// Credentials is the storefront account used by checkout scenarios.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Configured reports whether the credentials are real values rather than
// unset or placeholder sentinels. Scenarios that need an account are skipped,
// not failed, when this is false: "not configured" is distinct from "broken".
func (c Credentials) Configured() bool {
	if c.Email == "" || c.Password == "" {
		return false
	}
	if strings.Contains(c.Email, "your_email") || strings.Contains(c.Email, "${") {
		return false
	}
	return true
}

// Waits holds the bounded wait budgets, configurable per environment since
// the shared demo storefront's render latency varies.
type Waits struct {
	StepMs    int `json:"stepMs"`
	SettleMs  int `json:"settleMs"`
	ConfirmMs int `json:"confirmMs"`
}

// Step returns the per-step wait budget.
func (w Waits) Step() time.Duration { return time.Duration(w.StepMs) * time.Millisecond }

// Settle returns the fixed settle delay.
func (w Waits) Settle() time.Duration { return time.Duration(w.SettleMs) * time.Millisecond }

// Confirm returns the success-marker wait budget.
func (w Waits) Confirm() time.Duration { return time.Duration(w.ConfirmMs) * time.Millisecond }

// Config is the full verification configuration. It is constructed once in
// main and passed by reference to every component that needs it; there is no
// module-level cached instance.
type Config struct {
	BaseURL         string                    `json:"baseURL"`
	User            Credentials               `json:"testUser"`
	Products        []models.ProductSelection `json:"products"`
	ShippingAddress models.Address            `json:"shippingAddress"`
	ShippingMethod  string                    `json:"shippingMethod"`
	PaymentMethod   string                    `json:"paymentMethod"`
	Waits           Waits                     `json:"waits"`
}

// Load reads the JSON data file and applies environment overrides through
// the injected getenv (DEMO_SHOP_EMAIL, DEMO_SHOP_PASSWORD, DEMO_SHOP_URL).
func Load(path string, getenv func(string) string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if email := getenv("DEMO_SHOP_EMAIL"); email != "" {
		cfg.User.Email = email
	}
	if password := getenv("DEMO_SHOP_PASSWORD"); password != "" {
		cfg.User.Password = password
	}
	if url := getenv("DEMO_SHOP_URL"); url != "" {
		cfg.BaseURL = url
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	for i, product := range cfg.Products {
		if err := product.Validate(); err != nil {
			return nil, fmt.Errorf("invalid product %d in config: %w", i, err)
		}
	}

	return cfg, nil
}
