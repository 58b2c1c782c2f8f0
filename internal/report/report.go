package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ScenarioResult records the outcome of one test scenario.
type ScenarioResult struct {
	Name     string   `json:"name"`
	Package  string   `json:"package"`
	Category string   `json:"category"`
	Passed   bool     `json:"passed"`
	Skipped  bool     `json:"skipped,omitempty"`
	Duration float64  `json:"duration_seconds"`
	Output   []string `json:"output,omitempty"`
}

// RunReport is the overall report for one suite invocation.
type RunReport struct {
	RunID       string           `json:"run_id"`
	Timestamp   time.Time        `json:"timestamp"`
	Browser     string           `json:"browser"`
	Category    string           `json:"category"`
	TotalTests  int              `json:"total_tests"`
	Passed      int              `json:"passed"`
	Failed      int              `json:"failed"`
	Skipped     int              `json:"skipped"`
	SuccessRate float64          `json:"success_rate"`
	Results     []ScenarioResult `json:"results"`
}

// testEvent is one line of `go test -json` output (test2json format).
type testEvent struct {
	Action  string  `json:"Action"`
	Package string  `json:"Package"`
	Test    string  `json:"Test"`
	Elapsed float64 `json:"Elapsed"`
	Output  string  `json:"Output"`
}

// Collector accumulates test2json events into a RunReport.
type Collector struct {
	report  *RunReport
	results map[string]*ScenarioResult
	order   []string
}

// NewCollector creates a collector for one run.
func NewCollector(browser, category string) *Collector {
	return &Collector{
		report: &RunReport{
			RunID:     uuid.NewString(),
			Timestamp: time.Now().UTC(),
			Browser:   browser,
			Category:  category,
		},
		results: map[string]*ScenarioResult{},
	}
}

// Consume reads a `go test -json` stream until EOF, echoing test output
// to echo (pass nil to stay quiet).
func (c *Collector) Consume(r io.Reader, echo io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		var ev testEvent
		if err := json.Unmarshal(line, &ev); err != nil {
			// go test can interleave non-JSON lines on toolchain errors
			if echo != nil {
				fmt.Fprintln(echo, scanner.Text())
			}
			continue
		}
		c.observe(&ev, echo)
	}
	return scanner.Err()
}

func (c *Collector) observe(ev *testEvent, echo io.Writer) {
	if ev.Test == "" {
		return
	}
	key := ev.Package + "." + ev.Test
	switch ev.Action {
	case "run":
		if _, ok := c.results[key]; !ok {
			c.results[key] = &ScenarioResult{
				Name:     ev.Test,
				Package:  ev.Package,
				Category: categoryOf(ev.Test),
			}
			c.order = append(c.order, key)
		}
	case "output":
		if echo != nil {
			fmt.Fprint(echo, ev.Output)
		}
		if res, ok := c.results[key]; ok {
			res.Output = append(res.Output, ev.Output)
		}
	case "pass":
		if res, ok := c.results[key]; ok {
			res.Passed = true
			res.Duration = ev.Elapsed
			res.Output = nil
		}
	case "fail":
		if res, ok := c.results[key]; ok {
			res.Passed = false
			res.Duration = ev.Elapsed
		}
	case "skip":
		if res, ok := c.results[key]; ok {
			res.Skipped = true
			res.Duration = ev.Elapsed
			res.Output = nil
		}
	}
}

// categoryOf maps a test name to its suite category.
func categoryOf(name string) string {
	root := name
	if i := strings.IndexByte(name, '/'); i > 0 {
		root = name[:i]
	}
	switch {
	case strings.HasPrefix(root, "TestHealing"):
		return "healing"
	case strings.HasPrefix(root, "TestJourney"):
		return "e2e"
	case strings.HasPrefix(root, "TestCore"):
		return "core"
	default:
		return "other"
	}
}

// Finalize computes totals and returns the finished report.
func (c *Collector) Finalize() *RunReport {
	rep := c.report
	rep.Results = rep.Results[:0]
	for _, key := range c.order {
		res := c.results[key]
		rep.Results = append(rep.Results, *res)
		rep.TotalTests++
		switch {
		case res.Skipped:
			rep.Skipped++
		case res.Passed:
			rep.Passed++
		default:
			rep.Failed++
		}
	}
	if counted := rep.Passed + rep.Failed; counted > 0 {
		rep.SuccessRate = float64(rep.Passed) / float64(counted) * 100
	}
	return rep
}

// Write stores the report as JSON under dir, returning the file path.
func Write(rep *RunReport, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("report-%s.json", rep.RunID))
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// Latest loads the most recently written report under dir.
func Latest(dir string) (*RunReport, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "report-*.json"))
	if err != nil || len(matches) == 0 {
		return nil, fmt.Errorf("no reports found in %s", dir)
	}
	sort.Slice(matches, func(i, j int) bool {
		fi, _ := os.Stat(matches[i])
		fj, _ := os.Stat(matches[j])
		if fi == nil || fj == nil {
			return matches[i] < matches[j]
		}
		return fi.ModTime().After(fj.ModTime())
	})
	data, err := os.ReadFile(matches[0])
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	rep := &RunReport{}
	if err := json.Unmarshal(data, rep); err != nil {
		return nil, fmt.Errorf("parse report %s: %w", matches[0], err)
	}
	return rep, nil
}
