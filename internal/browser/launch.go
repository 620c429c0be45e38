package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Launch starts Playwright and a Chromium browser. Browsers must already be
// installed (go run github.com/playwright-community/playwright-go/cmd/playwright@latest install chromium).
func Launch(headless bool) (*playwright.Playwright, playwright.Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		pw.Stop()
		return nil, nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	return pw, b, nil
}
