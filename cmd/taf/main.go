package main

import (
	"fmt"
	"os"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/spf13/cobra"

	"github.com/rcutu/taf-self-healing/internal/config"
	"github.com/rcutu/taf-self-healing/internal/report"
	"github.com/rcutu/taf-self-healing/internal/runner"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taf",
	Short: "Self-healing test automation suite runner",
	Long: `taf drives the browser-based E2E suite against the demo application.

Scenarios are grouped into core functional checks, healing scenarios
(stable vs fragile selector pairs under runtime UI mutations), and
multi-page journeys. Runs produce a JSON report plus failure artifacts
under the configured artifacts directory.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var (
	categoryFlag string
	browserFlag  string
	headedFlag   bool
	slowMoFlag   int
	grepFlag     string
	timeoutFlag  time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the test suite or a subset of it",
	Long: `Run executes the suite via go test and collects results.

Categories select scenario groups: core (login, navigation, CRUD),
healing (mutation scenarios with paired stable/fragile assertions),
e2e (multi-page journeys). Exit code is non-zero when any scenario
fails.`,
	RunE: runSuite,
}

var reportPortFlag int

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Serve the most recent run report in a browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.GetConfig()
		rep, err := report.Latest(cfg.ArtifactsDir)
		if err != nil {
			return err
		}
		return report.Serve(fmt.Sprintf("localhost:%d", reportPortFlag), rep)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taf %s\n", rootCmd.Version)
	},
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the playwright driver and browsers",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := playwright.Install(); err != nil {
			return fmt.Errorf("playwright install failed: %w", err)
		}
		fmt.Println("Playwright driver and browsers installed")
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&categoryFlag, "category", "all", "Scenario subset: core, healing, e2e, or all")
	runCmd.Flags().StringVar(&browserFlag, "browser", "", "Browser engine: chromium, firefox, or webkit")
	runCmd.Flags().BoolVar(&headedFlag, "headed", false, "Run with a visible browser window")
	runCmd.Flags().IntVar(&slowMoFlag, "slow-mo", 0, "Slow down each operation by the given milliseconds")
	runCmd.Flags().StringVar(&grepFlag, "grep", "", "Run only scenarios matching this go test -run pattern")
	runCmd.Flags().DurationVar(&timeoutFlag, "timeout", 10*time.Minute, "Overall suite timeout")

	reportCmd.Flags().IntVar(&reportPortFlag, "port", 8089, "Port to serve the report on")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(versionCmd)
}

func runSuite(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()

	browser := browserFlag
	if browser == "" {
		browser = cfg.Browser
	}
	switch browser {
	case "chromium", "firefox", "webkit":
	default:
		return fmt.Errorf("unknown browser %q (want chromium, firefox, or webkit)", browser)
	}

	slowMo := slowMoFlag
	if headedFlag && slowMo == 0 {
		slowMo = 100 // headed runs are for watching; keep them followable
	}

	rep, err := runner.Run(runner.Options{
		Category:     categoryFlag,
		Browser:      browser,
		Headed:       headedFlag,
		SlowMo:       slowMo,
		Grep:         grepFlag,
		Timeout:      timeoutFlag,
		ArtifactsDir: cfg.ArtifactsDir,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n%d scenarios: %d passed, %d failed, %d skipped (%.1f%%)\n",
		rep.TotalTests, rep.Passed, rep.Failed, rep.Skipped, rep.SuccessRate)
	if rep.Failed > 0 {
		// Assertion failures are the healing signal; surface them loudly
		for _, res := range rep.Results {
			if !res.Passed && !res.Skipped {
				fmt.Printf("  FAIL %s (%s)\n", res.Name, res.Category)
			}
		}
		os.Exit(1)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
