//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rcutu/taf-self-healing/tests/e2e/helpers"
	"github.com/rcutu/taf-self-healing/tests/e2e/pages"
)

// startSession launches an isolated browser session for one scenario.
// Callers must defer TearDown.
func startSession(t *testing.T) *helpers.BrowserHelper {
	t.Helper()
	b := helpers.NewBrowserHelper(t)
	require.NoError(t, b.Setup(), "Failed to setup browser")
	return b
}

// loginToDashboard signs in with the demo credentials and returns the
// dashboard page object once it is ready.
func loginToDashboard(t *testing.T, b *helpers.BrowserHelper) *pages.DashboardPage {
	t.Helper()
	login := pages.NewLoginPage(b)
	require.NoError(t, login.Goto(), "Should reach login page")
	require.NoError(t, login.Login(b.Config.UserEmail, b.Config.UserPassword), "Login should submit")
	dash := pages.NewDashboardPage(b)
	require.NoError(t, dash.WaitReady(), "Dashboard should load after login")
	return dash
}

// openDevTools navigates to the dev page from anywhere in a logged-in
// session.
func openDevTools(t *testing.T, b *helpers.BrowserHelper) *pages.DevToolsPage {
	t.Helper()
	dev := pages.NewDevToolsPage(b)
	require.NoError(t, dev.Goto(), "Dev tools page should load")
	return dev
}
