package pages

import "fmt"

// Structural identifiers rendered by the application as data-testid
// attributes. This vocabulary is the integration contract with the app
// under test and must not drift.
const (
	TestIDEmailInput     = "email-input"
	TestIDPasswordInput  = "password-input"
	TestIDLoginSubmit    = "login-submit"
	TestIDLoginTitle     = "login-title"
	TestIDDashboardTitle = "dashboard-title"
	TestIDAddUserButton  = "add-user-button"
	TestIDUserTable      = "user-table"
	TestIDHeaderName     = "header-name"
	TestIDHeaderDept     = "header-department"
	TestIDModalBackdrop  = "modal-backdrop"
	TestIDModalTitle     = "modal-title"
	TestIDNameInput      = "name-input"
	TestIDRoleSelect     = "role-select"
	TestIDSaveButton     = "save-button"
	TestIDCancelButton   = "cancel-button"
	TestIDProfileTitle   = "profile-title"
	TestIDProfileLink    = "profile-link"
	TestIDDashboardLink  = "dashboard-link"
	TestIDLogoutButton   = "logout-button"
	TestIDDevToolsTitle  = "dev-tools-title"
	TestIDChangeLog      = "change-log"
	TestIDResetChanges   = "reset-changes"
	TestIDNavToLogin     = "nav-to-login"
)

// UserRowID returns the identifier of the table row for one user.
func UserRowID(id int) string { return fmt.Sprintf("user-row-%d", id) }

// EditUserID returns the identifier of a row's edit control.
func EditUserID(id int) string { return fmt.Sprintf("edit-user-%d", id) }

// DeleteUserID returns the identifier of a row's delete control.
func DeleteUserID(id int) string { return fmt.Sprintf("delete-user-%d", id) }

// ApplyChangeID returns the identifier of a dev-tools mutation trigger.
func ApplyChangeID(n int) string { return fmt.Sprintf("apply-change-%d", n) }
