package pages

import (
	"strings"
	"sync"

	"github.com/playwright-community/playwright-go"

	"github.com/rcutu/taf-self-healing/tests/e2e/fixtures"
	"github.com/rcutu/taf-self-healing/tests/e2e/helpers"
)

// DashboardPage wraps the /dashboard view and its user table.
type DashboardPage struct {
	view

	dialogOnce sync.Once
	dialog     *dialogDecision
}

// NewDashboardPage binds a dashboard page object to a browser session.
func NewDashboardPage(b *helpers.BrowserHelper) *DashboardPage {
	return &DashboardPage{
		view:   view{b: b, route: fixtures.RouteDashboard, marker: TestIDDashboardTitle},
		dialog: newDialogDecision(),
	}
}

func (p *DashboardPage) table() playwright.Locator {
	return p.Locate(TestIDUserTable)
}

// UserCount returns the number of rows in the user table body.
func (p *DashboardPage) UserCount() (int, error) {
	return p.table().Locator("tbody tr").Count()
}

// TableHeaders returns the visible column headers in order.
func (p *DashboardPage) TableHeaders() ([]string, error) {
	texts, err := p.table().Locator("thead th").AllInnerTexts()
	if err != nil {
		return nil, err
	}
	headers := make([]string, 0, len(texts))
	for _, t := range texts {
		headers = append(headers, strings.TrimSpace(t))
	}
	return headers, nil
}

// UserRowVisible reports whether the row with the given user ID is
// rendered. Stable lookup.
func (p *DashboardPage) UserRowVisible(id int) (bool, error) {
	return p.Locate(UserRowID(id)).IsVisible()
}

// TextVisible reports whether a cell in the user table renders exactly
// the given text. Deliberately presentation-bound; CRUD scenarios use
// it to observe renames. Matching is exact: a rename from "Test User"
// to "Test User Updated" must stop TextVisible("Test User") from
// matching, which substring lookups like :has-text() would not.
func (p *DashboardPage) TextVisible(text string) (bool, error) {
	cell := p.table().GetByText(text, playwright.LocatorGetByTextOptions{
		Exact: playwright.Bool(true),
	})
	count, err := cell.Count()
	if err != nil || count == 0 {
		return false, err
	}
	return cell.First().IsVisible()
}

// OpenAddUser opens the user modal in create mode.
func (p *DashboardPage) OpenAddUser() error {
	return p.click(TestIDAddUserButton)
}

// OpenEditUser opens the user modal pre-filled for one user.
func (p *DashboardPage) OpenEditUser(id int) error {
	return p.click(EditUserID(id))
}

// armDialog installs the session's dialog handler once. The handler
// only ever consumes a decision armed before the triggering click; an
// unarmed dialog is dismissed so the step fails visibly instead of
// hanging.
func (p *DashboardPage) armDialog() {
	p.dialogOnce.Do(func() {
		p.b.Page.OnDialog(func(dialog playwright.Dialog) {
			if accept, armed := p.dialog.consume(); armed {
				if accept {
					_ = dialog.Accept()
				} else {
					_ = dialog.Dismiss()
				}
				p.dialog.markHandled(dialog.Message())
			} else {
				_ = dialog.Dismiss()
			}
		})
	})
}

// DeleteUser clicks a row's delete control with the confirmation
// decision armed in advance. confirm=true accepts the dialog and
// deletes the row; confirm=false dismisses it and leaves the row.
func (p *DashboardPage) DeleteUser(id int, confirm bool) error {
	p.armDialog()
	p.dialog.arm(confirm)
	if err := p.click(DeleteUserID(id)); err != nil {
		p.dialog.consume() // disarm
		return err
	}
	if _, handled := p.dialog.await(p.b.Config.Timeout); !handled {
		return &DialogTimeout{TestID: DeleteUserID(id)}
	}
	return p.b.WaitForSettle()
}
