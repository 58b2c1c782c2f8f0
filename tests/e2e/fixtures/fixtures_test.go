package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedTexts(t *testing.T) {
	exp := ExpectedTexts()

	assert.Equal(t, "Sign In", exp.LoginButton.Initial)
	assert.Equal(t, "Log In Now", exp.LoginButton.Mutated)
	assert.Equal(t, []string{"Name", "Email", "Role", "Actions"}, exp.TableHeaders)
	assert.Equal(t, "Department", exp.DepartmentHeader)

	// Every oracle pair must actually differ, or the paired fragile
	// assertion could never be invalidated
	for name, pair := range map[string]TextPair{
		"login_button":     exp.LoginButton,
		"add_modal_title":  exp.AddModalTitle,
		"edit_modal_title": exp.EditModalTitle,
	} {
		assert.NotEmpty(t, pair.Initial, "%s initial", name)
		assert.NotEmpty(t, pair.Mutated, "%s mutated", name)
		assert.NotEqual(t, pair.Initial, pair.Mutated, "%s must change under mutation", name)
	}
}

func TestSeededUsers(t *testing.T) {
	users := SeededUsers()
	require.Len(t, users, 3)

	seen := map[int]bool{}
	for _, u := range users {
		assert.GreaterOrEqual(t, u.ID, 1)
		assert.False(t, seen[u.ID], "duplicate ID %d", u.ID)
		seen[u.ID] = true
		assert.NotEmpty(t, u.Name)
		assert.NotEmpty(t, u.Email)
		assert.Contains(t, []Role{RoleAdmin, RoleUser, RoleManager}, u.Role)
	}
}

func TestNewUserDoesNotCollideWithSeed(t *testing.T) {
	nu := NewUser()
	assert.Equal(t, "Test User", nu.Name)
	assert.Equal(t, "test@example.com", nu.Email)
	assert.Equal(t, RoleUser, nu.Role)

	for _, u := range SeededUsers() {
		assert.NotEqual(t, u.Email, nu.Email, "new user must be distinguishable from the seed")
		assert.NotEqual(t, u.Name, nu.Name)
	}
}
