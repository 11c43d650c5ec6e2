// Package config holds application-level configuration loaded from the
// environment and from optional YAML policy files.
package config

import (
	"fmt"
	"time"

	"pagewatch/pkg/config"
)

// App is the top-level runtime configuration.
type App struct {
	// HTTPAddr is the listen address of the API server.
	HTTPAddr string
	// MetricsAddr is the listen address of the Prometheus metrics server.
	MetricsAddr string
	// DataDir is the root directory for cached page assets.
	DataDir string
	// DefaultCycle is the polling cycle applied to sources that carry no
	// explicit cycle length.
	DefaultCycle time.Duration
	// ImageMaxWidth is the maximum width of cached preview images in pixels.
	ImageMaxWidth int
	// GaugeRefreshSpec is the cron expression for refreshing inventory gauges.
	GaugeRefreshSpec string
	// CrawlPolicyFile optionally points at a YAML crawl policy. Empty means
	// built-in defaults.
	CrawlPolicyFile string
}

// LoadApp reads the application configuration from environment variables,
// falling back to defaults suitable for local development.
func LoadApp() (App, error) {
	app := App{
		HTTPAddr:         config.GetEnvString("HTTP_ADDR", ":8080"),
		MetricsAddr:      config.GetEnvString("METRICS_ADDR", ":9090"),
		DataDir:          config.GetEnvString("PAGE_DATA_DIR", "page_data"),
		DefaultCycle:     config.GetEnvDuration("DEFAULT_CYCLE", 15*time.Minute),
		ImageMaxWidth:    config.GetEnvInt("IMAGE_MAX_WIDTH", 720),
		GaugeRefreshSpec: config.GetEnvString("GAUGE_REFRESH_SPEC", "@every 1m"),
		CrawlPolicyFile:  config.GetEnvString("CRAWL_POLICY_FILE", ""),
	}

	if err := app.Validate(); err != nil {
		return App{}, err
	}
	return app, nil
}

// Validate checks the configuration for values that would misbehave at
// runtime.
func (a App) Validate() error {
	if a.HTTPAddr == "" {
		return fmt.Errorf("config: HTTP_ADDR must not be empty")
	}
	if a.DataDir == "" {
		return fmt.Errorf("config: PAGE_DATA_DIR must not be empty")
	}
	if err := config.ValidateDurationRange(a.DefaultCycle, 10*time.Second, 24*time.Hour); err != nil {
		return fmt.Errorf("config: DEFAULT_CYCLE: %w", err)
	}
	if a.ImageMaxWidth <= 0 {
		return fmt.Errorf("config: IMAGE_MAX_WIDTH must be positive, got %d", a.ImageMaxWidth)
	}
	return nil
}
