// Package fixtures is the test-data registry: user records seeded by the
// demo application, the route table, and the expected-text oracle values
// for the mutation scenarios.
package fixtures

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"
)

// Role is a user role as rendered by the application.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleUser    Role = "User"
	RoleManager Role = "Manager"
)

// User mirrors one row of the dashboard user table. IDs are assigned by
// the application on creation; seeded users have fixed IDs.
type User struct {
	ID         int
	Name       string
	Email      string
	Role       Role
	Department string
}

// Canonical application routes.
const (
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
	RouteProfile   = "/profile"
	RouteDevTools  = "/dev"
)

// SeededUsers returns the three users present after a fresh load of the
// demo application.
func SeededUsers() []User {
	return []User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Role: RoleAdmin, Department: "Engineering"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: RoleUser, Department: "Marketing"},
		{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: RoleManager, Department: "Sales"},
	}
}

// NewUser is the record the CRUD scenarios create and later delete.
func NewUser() User {
	return User{Name: "Test User", Email: "test@example.com", Role: RoleUser}
}

// UpdatedUserName is what the CRUD scenario renames NewUser to.
const UpdatedUserName = "Test User Updated"

// TextPair is an expected-text oracle: the value rendered on the
// unmutated baseline and the value after the paired mutation.
type TextPair struct {
	Initial string `yaml:"initial"`
	Mutated string `yaml:"mutated"`
}

// Expected holds all oracle values. Never mutated by the suite.
type Expected struct {
	LoginButton      TextPair `yaml:"login_button"`
	AddModalTitle    TextPair `yaml:"add_modal_title"`
	EditModalTitle   TextPair `yaml:"edit_modal_title"`
	TableHeaders     []string `yaml:"table_headers"`
	DepartmentHeader string   `yaml:"department_header"`
}

//go:embed expected.yaml
var expectedYAML []byte

var (
	expected     Expected
	expectedOnce sync.Once
)

// ExpectedTexts returns the oracle values parsed from the embedded
// fixture file. The file is a compile-time asset; a parse failure is a
// programming error.
func ExpectedTexts() Expected {
	expectedOnce.Do(func() {
		if err := yaml.Unmarshal(expectedYAML, &expected); err != nil {
			panic("fixtures: invalid expected.yaml: " + err.Error())
		}
	})
	return expected
}
