package pages

import (
	"github.com/rcutu/taf-self-healing/tests/e2e/fixtures"
	"github.com/rcutu/taf-self-healing/tests/e2e/helpers"
)

// LoginPage wraps the /login view.
type LoginPage struct {
	view
}

// NewLoginPage binds a login page object to a browser session.
func NewLoginPage(b *helpers.BrowserHelper) *LoginPage {
	return &LoginPage{view: view{b: b, route: fixtures.RouteLogin, marker: TestIDLoginTitle}}
}

// Login fills the credentials and submits the form. It does not wait
// for the destination view; callers assert the outcome they expect
// (dashboard on success, still on /login on failure).
func (p *LoginPage) Login(email, password string) error {
	if err := p.fill(TestIDEmailInput, email); err != nil {
		return err
	}
	if err := p.fill(TestIDPasswordInput, password); err != nil {
		return err
	}
	return p.click(TestIDLoginSubmit)
}

// SubmitLabel returns the login button's visible text. Oracle input for
// the button-label mutation scenario.
func (p *LoginPage) SubmitLabel() (string, error) {
	return p.text(TestIDLoginSubmit)
}
