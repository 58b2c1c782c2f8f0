package runner

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternFor(t *testing.T) {
	cases := []struct {
		category string
		pattern  string
	}{
		{"core", "^TestCore"},
		{"healing", "^TestHealing"},
		{"e2e", "^TestJourney"},
		{"all", ""},
		{"", ""},
	}
	for _, tc := range cases {
		got, err := patternFor(tc.category)
		require.NoError(t, err, "category %q", tc.category)
		assert.Equal(t, tc.pattern, got, "category %q", tc.category)
	}
}

func TestPatternForUnknownCategory(t *testing.T) {
	_, err := patternFor("smoke")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smoke")
}

func TestModuleRoot(t *testing.T) {
	// The test runs from internal/runner; the root must be found by
	// walking upward
	root, err := moduleRoot()
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "go.mod"))
	assert.DirExists(t, filepath.Join(root, "tests", "e2e"))
}
