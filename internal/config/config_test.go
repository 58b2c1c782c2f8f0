package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	d := defaults()

	assert.Equal(t, "http://localhost:3000", d.BaseURL)
	assert.Equal(t, "chromium", d.Browser)
	assert.True(t, d.Headless)
	assert.Equal(t, 30*time.Second, d.Timeout)
	assert.True(t, d.Screenshots)
	assert.False(t, d.Videos)
	assert.Equal(t, "test-results", d.ArtifactsDir)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BASE_URL", "http://demo.internal:4000")
	t.Setenv("BROWSER", "firefox")
	t.Setenv("HEADLESS", "false")
	t.Setenv("SLOW_MO", "250")
	t.Setenv("E2E_TIMEOUT", "45s")

	c, err := load()
	require.NoError(t, err)

	assert.Equal(t, "http://demo.internal:4000", c.BaseURL)
	assert.Equal(t, "firefox", c.Browser)
	assert.False(t, c.Headless)
	assert.Equal(t, 250, c.SlowMo)
	assert.Equal(t, 45*time.Second, c.Timeout)
}
