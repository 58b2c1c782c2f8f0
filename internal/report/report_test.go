package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStream = `{"Action":"run","Package":"example/tests/e2e","Test":"TestCoreLogin"}
{"Action":"output","Package":"example/tests/e2e","Test":"TestCoreLogin","Output":"=== RUN   TestCoreLogin\n"}
{"Action":"pass","Package":"example/tests/e2e","Test":"TestCoreLogin","Elapsed":1.5}
{"Action":"run","Package":"example/tests/e2e","Test":"TestHealingLoginButtonLabel"}
{"Action":"output","Package":"example/tests/e2e","Test":"TestHealingLoginButtonLabel","Output":"    healing_test.go:40: label mismatch\n"}
{"Action":"fail","Package":"example/tests/e2e","Test":"TestHealingLoginButtonLabel","Elapsed":2.25}
{"Action":"run","Package":"example/tests/e2e","Test":"TestJourneyUserLifecycle"}
{"Action":"skip","Package":"example/tests/e2e","Test":"TestJourneyUserLifecycle","Elapsed":0}
{"Action":"pass","Package":"example/tests/e2e","Elapsed":4.1}
`

func TestCollectorConsume(t *testing.T) {
	c := NewCollector("chromium", "all")
	require.NoError(t, c.Consume(strings.NewReader(sampleStream), nil))

	rep := c.Finalize()
	assert.Equal(t, 3, rep.TotalTests)
	assert.Equal(t, 1, rep.Passed)
	assert.Equal(t, 1, rep.Failed)
	assert.Equal(t, 1, rep.Skipped)
	assert.InDelta(t, 50.0, rep.SuccessRate, 0.01)
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, "chromium", rep.Browser)

	require.Len(t, rep.Results, 3)
	byName := map[string]ScenarioResult{}
	for _, r := range rep.Results {
		byName[r.Name] = r
	}

	login := byName["TestCoreLogin"]
	assert.True(t, login.Passed)
	assert.Equal(t, "core", login.Category)
	assert.Empty(t, login.Output, "passing scenarios should not retain output")
	assert.InDelta(t, 1.5, login.Duration, 0.001)

	healing := byName["TestHealingLoginButtonLabel"]
	assert.False(t, healing.Passed)
	assert.Equal(t, "healing", healing.Category)
	assert.NotEmpty(t, healing.Output, "failures must keep their output for diagnosis")

	journey := byName["TestJourneyUserLifecycle"]
	assert.True(t, journey.Skipped)
	assert.Equal(t, "e2e", journey.Category)
}

func TestCollectorIgnoresNonJSONLines(t *testing.T) {
	c := NewCollector("chromium", "core")
	stream := "go: downloading something\n" + sampleStream
	require.NoError(t, c.Consume(strings.NewReader(stream), nil))
	assert.Equal(t, 3, c.Finalize().TotalTests)
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, "core", categoryOf("TestCoreUserCRUD"))
	assert.Equal(t, "core", categoryOf("TestCoreUserCRUD/Create_user"))
	assert.Equal(t, "healing", categoryOf("TestHealingResetRestoresBaseline"))
	assert.Equal(t, "e2e", categoryOf("TestJourneyMutatedSession"))
	assert.Equal(t, "other", categoryOf("TestSetup"))
}

func TestWriteAndLatest(t *testing.T) {
	dir := t.TempDir()

	c := NewCollector("firefox", "healing")
	require.NoError(t, c.Consume(strings.NewReader(sampleStream), nil))
	rep := c.Finalize()

	path, err := Write(rep, dir)
	require.NoError(t, err)
	assert.FileExists(t, path)

	loaded, err := Latest(dir)
	require.NoError(t, err)
	assert.Equal(t, rep.RunID, loaded.RunID)
	assert.Equal(t, rep.TotalTests, loaded.TotalTests)
	assert.Equal(t, "firefox", loaded.Browser)
}

func TestLatestEmptyDir(t *testing.T) {
	_, err := Latest(t.TempDir())
	assert.Error(t, err)
}
