// Package runner builds and executes the suite's `go test` invocation
// and turns its output into a run report.
package runner

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rcutu/taf-self-healing/internal/report"
)

// Options selects which scenarios to run and how.
type Options struct {
	Category     string // core, healing, e2e, or all
	Browser      string // chromium, firefox, webkit
	Headed       bool
	SlowMo       int
	Grep         string // overrides the category pattern
	Timeout      time.Duration
	ArtifactsDir string
}

// moduleRoot walks up from the working directory to the directory
// containing go.mod, so `taf run` works from any subdirectory.
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found in any parent of the working directory")
		}
		dir = parent
	}
}

// patternFor maps a category to a -run filter over the suite's test names.
func patternFor(category string) (string, error) {
	switch category {
	case "core":
		return "^TestCore", nil
	case "healing":
		return "^TestHealing", nil
	case "e2e":
		return "^TestJourney", nil
	case "", "all":
		return "", nil
	default:
		return "", fmt.Errorf("unknown category %q (want core, healing, e2e, or all)", category)
	}
}

// Run executes the selected scenarios and writes a JSON report under
// opts.ArtifactsDir. The returned report is complete even when
// scenarios failed; the error is non-nil only when the run itself
// could not be executed or collected.
func Run(opts Options) (*report.RunReport, error) {
	pattern, err := patternFor(opts.Category)
	if err != nil {
		return nil, err
	}
	if opts.Grep != "" {
		pattern = opts.Grep
	}

	root, err := moduleRoot()
	if err != nil {
		return nil, err
	}
	artifactsDir := opts.ArtifactsDir
	if !filepath.IsAbs(artifactsDir) {
		artifactsDir = filepath.Join(root, artifactsDir)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}

	args := []string{
		"test", "-tags", "e2e", "-json", "-count=1",
		"-timeout", timeout.String(),
	}
	if pattern != "" {
		args = append(args, "-run", pattern)
	}
	args = append(args, "./tests/e2e/...")

	cmd := exec.Command("go", args...)
	cmd.Dir = root
	cmd.Env = append(os.Environ(),
		"BROWSER="+opts.Browser,
		"HEADLESS="+strconv.FormatBool(!opts.Headed),
		"SLOW_MO="+strconv.Itoa(opts.SlowMo),
		"ARTIFACTS_DIR="+artifactsDir,
	)
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("pipe go test output: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start go test: %w", err)
	}

	collector := report.NewCollector(opts.Browser, opts.Category)
	consumeErr := collector.Consume(stdout, os.Stdout)
	waitErr := cmd.Wait()
	if consumeErr != nil {
		return nil, fmt.Errorf("collect go test output: %w", consumeErr)
	}

	rep := collector.Finalize()
	if path, err := report.Write(rep, artifactsDir); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not write report: %v\n", err)
	} else {
		fmt.Printf("\nReport written to %s\n", path)
	}

	// go test exits non-zero on failed tests; that is reflected in the
	// report, not treated as a runner error
	if waitErr != nil && rep.TotalTests == 0 {
		return rep, fmt.Errorf("go test did not run any scenarios: %w", waitErr)
	}
	return rep, nil
}
