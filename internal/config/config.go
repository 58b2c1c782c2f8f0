package config

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// TestConfig holds all configuration for the test suite and its runner.
type TestConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	Browser      string        `mapstructure:"browser"`
	Headless     bool          `mapstructure:"headless"`
	SlowMo       int           `mapstructure:"slow_mo"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Screenshots  bool          `mapstructure:"screenshots"`
	Videos       bool          `mapstructure:"videos"`
	Trace        bool          `mapstructure:"trace"`
	ArtifactsDir string        `mapstructure:"artifacts_dir"`
	UserEmail    string        `mapstructure:"user_email"`
	UserPassword string        `mapstructure:"user_password"`
}

var (
	cfg  *TestConfig
	once sync.Once
)

// envKeys maps config keys to the environment variables that set them.
var envKeys = map[string]string{
	"base_url":      "BASE_URL",
	"browser":       "BROWSER",
	"headless":      "HEADLESS",
	"slow_mo":       "SLOW_MO",
	"timeout":       "E2E_TIMEOUT",
	"screenshots":   "SCREENSHOTS",
	"videos":        "VIDEOS",
	"trace":         "TRACE",
	"artifacts_dir": "ARTIFACTS_DIR",
	"user_email":    "DEMO_USER_EMAIL",
	"user_password": "DEMO_USER_PASSWORD",
}

// GetConfig returns the suite configuration, loading it once from
// defaults, an optional .env file, and environment variables
// (highest precedence last).
func GetConfig() *TestConfig {
	once.Do(func() {
		c, err := load()
		if err != nil {
			log.Printf("[config] load failed, using defaults: %v", err)
			c = defaults()
		}
		cfg = c
	})
	return cfg
}

func defaults() *TestConfig {
	return &TestConfig{
		BaseURL:      "http://localhost:3000",
		Browser:      "chromium",
		Headless:     true,
		Timeout:      30 * time.Second,
		Screenshots:  true,
		ArtifactsDir: "test-results",
		UserEmail:    "admin@example.com",
		UserPassword: "password123",
	}
}

func load() (*TestConfig, error) {
	v := viper.New()

	d := defaults()
	v.SetDefault("base_url", d.BaseURL)
	v.SetDefault("browser", d.Browser)
	v.SetDefault("headless", d.Headless)
	v.SetDefault("slow_mo", d.SlowMo)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("screenshots", d.Screenshots)
	v.SetDefault("videos", d.Videos)
	v.SetDefault("trace", d.Trace)
	v.SetDefault("artifacts_dir", d.ArtifactsDir)
	v.SetDefault("user_email", d.UserEmail)
	v.SetDefault("user_password", d.UserPassword)

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		// .env is optional; only report parse failures
		if !strings.Contains(err.Error(), "no such file") {
			log.Printf("[config] skipping .env: %v", err)
		}
	}

	for key, env := range envKeys {
		_ = v.BindEnv(key, env)
	}

	c := &TestConfig{}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}
	return c, nil
}
