package pages

import (
	"strings"

	"github.com/rcutu/taf-self-healing/tests/e2e/fixtures"
	"github.com/rcutu/taf-self-healing/tests/e2e/helpers"
)

// DevToolsPage wraps the /dev view: the control surface for the three
// session-scoped UI mutations.
type DevToolsPage struct {
	view
}

// NewDevToolsPage binds a dev-tools page object to a browser session.
func NewDevToolsPage(b *helpers.BrowserHelper) *DevToolsPage {
	return &DevToolsPage{view: view{b: b, route: fixtures.RouteDevTools, marker: TestIDDevToolsTitle}}
}

// ApplyChange triggers mutation n (1..3) and waits for it to settle.
// Re-applying an already active change is idempotent on the app side.
func (p *DevToolsPage) ApplyChange(n int) error {
	if err := p.click(ApplyChangeID(n)); err != nil {
		return err
	}
	return p.b.WaitForSettle()
}

// ResetChanges reverts all three mutation flags atomically.
func (p *DevToolsPage) ResetChanges() error {
	if err := p.click(TestIDResetChanges); err != nil {
		return err
	}
	return p.b.WaitForSettle()
}

// ChangeLogEntries returns the change-log readout, one entry per line.
func (p *DevToolsPage) ChangeLogEntries() ([]string, error) {
	raw, err := p.text(TestIDChangeLog)
	if err != nil {
		return nil, err
	}
	var entries []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			entries = append(entries, line)
		}
	}
	return entries, nil
}

// NavToLogin follows the dev page's client-side link back to /login,
// keeping the session (and its mutation flags) alive.
func (p *DevToolsPage) NavToLogin() error {
	return p.click(TestIDNavToLogin)
}
