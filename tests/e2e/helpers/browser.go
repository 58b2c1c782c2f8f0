package helpers

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	"github.com/rcutu/taf-self-healing/internal/config"
)

// BrowserHelper provides browser setup and teardown for tests. Each
// helper owns an isolated browser session; scenarios never share one.
type BrowserHelper struct {
	Playwright *playwright.Playwright
	Browser    playwright.Browser
	Context    playwright.BrowserContext
	Page       playwright.Page
	Config     *config.TestConfig
	t          *testing.T
	sessionID  string
}

// NewBrowserHelper creates a new browser helper instance.
func NewBrowserHelper(t *testing.T) *BrowserHelper {
	return &BrowserHelper{
		Config:    config.GetConfig(),
		t:         t,
		sessionID: uuid.NewString()[:8],
	}
}

// Setup initializes playwright, launches the configured browser engine
// and creates a fresh context and page.
func (b *BrowserHelper) Setup() error {
	var pw *playwright.Playwright
	var err error
	if os.Getenv("PLAYWRIGHT_PREINSTALLED") != "1" {
		if err = playwright.Install(); err != nil {
			return fmt.Errorf("could not install playwright browsers: %w", err)
		}
	}
	pw, err = playwright.Run()
	if err != nil {
		// Retry once after an explicit driver install
		_ = playwright.Install()
		pw, err = playwright.Run()
		if err != nil {
			return fmt.Errorf("could not start playwright after retry: %w", err)
		}
	}
	b.Playwright = pw

	browser, err := b.engine().Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(b.Config.Headless),
		SlowMo:   playwright.Float(float64(b.Config.SlowMo)),
	})
	if err != nil {
		return fmt.Errorf("could not launch %s: %w", b.Config.Browser, err)
	}
	b.Browser = browser

	ctxOpts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
	}
	if b.Config.Videos {
		ctxOpts.RecordVideo = &playwright.RecordVideo{
			Dir: filepath.Join(b.Config.ArtifactsDir, "videos"),
		}
	}
	context, err := browser.NewContext(ctxOpts)
	if err != nil {
		return fmt.Errorf("could not create context: %w", err)
	}
	b.Context = context

	if b.Config.Trace {
		if err := context.Tracing().Start(playwright.TracingStartOptions{
			Screenshots: playwright.Bool(true),
			Snapshots:   playwright.Bool(true),
		}); err != nil {
			return fmt.Errorf("could not start tracing: %w", err)
		}
	}

	page, err := context.NewPage()
	if err != nil {
		return fmt.Errorf("could not create page: %w", err)
	}
	b.Page = page

	page.SetDefaultTimeout(float64(b.Config.Timeout.Milliseconds()))

	return nil
}

// engine maps the configured browser name to a playwright browser type.
func (b *BrowserHelper) engine() playwright.BrowserType {
	switch b.Config.Browser {
	case "firefox":
		return b.Playwright.Firefox
	case "webkit":
		return b.Playwright.WebKit
	default:
		return b.Playwright.Chromium
	}
}

// TearDown captures failure artifacts and closes the session.
func (b *BrowserHelper) TearDown() {
	if b.t.Failed() && b.Config.Screenshots && b.Page != nil {
		screenshotPath := filepath.Join(b.Config.ArtifactsDir, "screenshots",
			fmt.Sprintf("%s_%s_%d.png", b.t.Name(), b.sessionID, time.Now().Unix()))
		_, _ = b.Page.Screenshot(playwright.PageScreenshotOptions{
			Path:     playwright.String(screenshotPath),
			FullPage: playwright.Bool(true),
		})
	}

	if b.Config.Trace && b.Context != nil {
		tracePath := filepath.Join(b.Config.ArtifactsDir, "traces",
			fmt.Sprintf("%s_%s.zip", b.t.Name(), b.sessionID))
		_ = b.Context.Tracing().Stop(tracePath)
	}

	if b.Page != nil {
		b.Page.Close()
	}
	if b.Context != nil {
		b.Context.Close()
	}
	if b.Browser != nil {
		b.Browser.Close()
	}
	if b.Playwright != nil {
		b.Playwright.Stop()
	}
}

// URL returns the absolute URL for a path under the configured base URL.
func (b *BrowserHelper) URL(path string) string {
	return b.Config.BaseURL + path
}

// WaitForSettle waits for in-flight requests to finish after an action
// that re-renders part of the page.
func (b *BrowserHelper) WaitForSettle() error {
	return b.Page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	})
}
