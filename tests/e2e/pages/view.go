// Package pages wraps the application's views behind named, structurally
// identified element handles and composite user actions. All lookups go
// through data-testid attributes except the deliberately fragile handles
// the healing scenarios construct themselves.
package pages

import (
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/rcutu/taf-self-healing/tests/e2e/helpers"
)

// View is the capability every page object provides.
type View interface {
	// Goto navigates to the view's canonical route and waits for it to
	// be ready.
	Goto() error
	// WaitReady waits for the view's marker element to be visible.
	WaitReady() error
	// Locate resolves an element by its structural identifier. No DOM
	// access happens until the returned locator is used.
	Locate(testID string) playwright.Locator
}

var (
	_ View = (*LoginPage)(nil)
	_ View = (*DashboardPage)(nil)
	_ View = (*ProfilePage)(nil)
	_ View = (*DevToolsPage)(nil)
)

// view carries the state shared by all page objects. Construction binds
// the session and route only; element lookup is lazy.
type view struct {
	b      *helpers.BrowserHelper
	route  string
	marker string
}

func (v *view) Goto() error {
	if _, err := v.b.Page.Goto(v.b.URL(v.route)); err != nil {
		return &NavigationError{Route: v.route, Marker: v.marker, Err: err}
	}
	return v.WaitReady()
}

func (v *view) WaitReady() error {
	err := v.Locate(v.marker).WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	})
	if err != nil {
		return &NavigationError{Route: v.route, Marker: v.marker, Err: err}
	}
	return nil
}

func (v *view) Locate(testID string) playwright.Locator {
	return v.b.Page.GetByTestId(testID)
}

// fill and click are the sub-steps of composite actions. Playwright
// waits for actionability (visible, enabled, stable) before operating;
// an exceeded wait surfaces as ElementNotReadyError.
func (v *view) fill(testID, value string) error {
	if err := v.Locate(testID).Fill(value); err != nil {
		return &ElementNotReadyError{TestID: testID, Err: err}
	}
	return nil
}

func (v *view) click(testID string) error {
	if err := v.Locate(testID).Click(); err != nil {
		return &ElementNotReadyError{TestID: testID, Err: err}
	}
	return nil
}

// text reads the trimmed inner text of an element. Read-only.
func (v *view) text(testID string) (string, error) {
	s, err := v.Locate(testID).InnerText()
	if err != nil {
		return "", &ElementNotReadyError{TestID: testID, Err: err}
	}
	return strings.TrimSpace(s), nil
}

// ClickNav clicks a client-side navigation control. The caller waits on
// the destination view's WaitReady.
func (v *view) ClickNav(testID string) error {
	return v.click(testID)
}
