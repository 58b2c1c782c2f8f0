package pages

import (
	"github.com/rcutu/taf-self-healing/tests/e2e/fixtures"
	"github.com/rcutu/taf-self-healing/tests/e2e/helpers"
)

// ProfilePage wraps the /profile view.
type ProfilePage struct {
	view
}

// NewProfilePage binds a profile page object to a browser session.
func NewProfilePage(b *helpers.BrowserHelper) *ProfilePage {
	return &ProfilePage{view: view{b: b, route: fixtures.RouteProfile, marker: TestIDProfileTitle}}
}

// Title returns the profile heading text.
func (p *ProfilePage) Title() (string, error) {
	return p.text(TestIDProfileTitle)
}

// Logout clicks the logout control. Callers wait on the login view.
func (p *ProfilePage) Logout() error {
	return p.click(TestIDLogoutButton)
}
