package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"run", "report", "install", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, "subcommand %q", name)
		assert.Equal(t, name, cmd.Name(), "Find should resolve %q to its own command, not the root", name)
	}
}

func TestRunFlags(t *testing.T) {
	for _, flag := range []string{"category", "browser", "headed", "slow-mo", "grep", "timeout"} {
		assert.NotNil(t, runCmd.Flags().Lookup(flag), "run should define --%s", flag)
	}
}
