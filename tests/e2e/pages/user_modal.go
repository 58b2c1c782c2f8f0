package pages

import (
	"github.com/playwright-community/playwright-go"

	"github.com/rcutu/taf-self-healing/tests/e2e/fixtures"
	"github.com/rcutu/taf-self-healing/tests/e2e/helpers"
)

// UserModal wraps the add/edit user dialog. It has no route of its own;
// the dashboard opens it, so Goto is not part of its surface.
type UserModal struct {
	b *helpers.BrowserHelper
}

// NewUserModal binds a modal object to a browser session.
func NewUserModal(b *helpers.BrowserHelper) *UserModal {
	return &UserModal{b: b}
}

// Locate resolves an element scoped to the modal backdrop, so testids
// shared with other views (email-input) resolve unambiguously.
func (m *UserModal) Locate(testID string) playwright.Locator {
	return m.b.Page.GetByTestId(TestIDModalBackdrop).GetByTestId(testID)
}

// WaitReady waits for the modal to be visible.
func (m *UserModal) WaitReady() error {
	err := m.b.Page.GetByTestId(TestIDModalTitle).WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	})
	if err != nil {
		return &ElementNotReadyError{TestID: TestIDModalTitle, Err: err}
	}
	return nil
}

// Title returns the modal's visible title text.
func (m *UserModal) Title() (string, error) {
	s, err := m.b.Page.GetByTestId(TestIDModalTitle).InnerText()
	if err != nil {
		return "", &ElementNotReadyError{TestID: TestIDModalTitle, Err: err}
	}
	return s, nil
}

// FillForm fills the user fields in order. Empty fields are left
// untouched so edits can change a single value.
func (m *UserModal) FillForm(u fixtures.User) error {
	if u.Name != "" {
		if err := m.fill(TestIDNameInput, u.Name); err != nil {
			return err
		}
	}
	if u.Email != "" {
		if err := m.fill(TestIDEmailInput, u.Email); err != nil {
			return err
		}
	}
	if u.Role != "" {
		if _, err := m.Locate(TestIDRoleSelect).SelectOption(playwright.SelectOptionValues{
			Labels: &[]string{string(u.Role)},
		}); err != nil {
			return &ElementNotReadyError{TestID: TestIDRoleSelect, Err: err}
		}
	}
	return nil
}

// Save submits the form and waits for the modal to close.
func (m *UserModal) Save() error {
	if err := m.click(TestIDSaveButton); err != nil {
		return err
	}
	return m.waitClosed()
}

// Cancel discards the form and waits for the modal to close.
func (m *UserModal) Cancel() error {
	if err := m.click(TestIDCancelButton); err != nil {
		return err
	}
	return m.waitClosed()
}

func (m *UserModal) waitClosed() error {
	err := m.b.Page.GetByTestId(TestIDModalBackdrop).WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateHidden,
	})
	if err != nil {
		return &ElementNotReadyError{TestID: TestIDModalBackdrop, Err: err}
	}
	return nil
}

func (m *UserModal) fill(testID, value string) error {
	if err := m.Locate(testID).Fill(value); err != nil {
		return &ElementNotReadyError{TestID: testID, Err: err}
	}
	return nil
}

func (m *UserModal) click(testID string) error {
	if err := m.Locate(testID).Click(); err != nil {
		return &ElementNotReadyError{TestID: testID, Err: err}
	}
	return nil
}
