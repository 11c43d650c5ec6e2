package fetcher

import (
	"fmt"
	"time"

	"pagewatch/pkg/config"
)

// Config holds the configuration for outbound fetches. One shared client
// serves crawl pages, item pages, and preview images, so the limits here
// bound every network touch the core makes.
type Config struct {
	// Timeout is the maximum duration for a single HTTP request.
	// Default: 10s
	Timeout time.Duration

	// MaxBodySize is the maximum HTTP response body size in bytes.
	// Responses are truncated at this limit while reading, regardless of
	// the Content-Length header.
	// Default: 10485760 (10MB)
	MaxBodySize int64

	// MaxRedirects is the maximum number of HTTP redirects to follow.
	// Default: 5
	MaxRedirects int

	// DenyPrivateIPs controls whether to block URLs resolving to
	// private/loopback/link-local addresses (SSRF prevention). Should
	// always be true in production.
	// Default: true
	DenyPrivateIPs bool

	// UserAgent is sent on every outbound request.
	UserAgent string

	// RequestsPerSecond caps the sustained outbound request rate across
	// all watchers (politeness; many sources share one egress).
	// Default: 5
	RequestsPerSecond float64

	// Burst is the token bucket size for the rate limiter.
	// Default: 10
	Burst int

	// BlockedHosts lists hostnames that must never be fetched, regardless
	// of where a link or redirect points. Empty by default; populated from
	// the crawl policy file when one is configured.
	BlockedHosts []string
}

// DefaultConfig returns production-ready defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:           10 * time.Second,
		MaxBodySize:       10 * 1024 * 1024,
		MaxRedirects:      5,
		DenyPrivateIPs:    true,
		UserAgent:         "PagewatchBot/1.0",
		RequestsPerSecond: 5,
		Burst:             10,
	}
}

// LoadConfigFromEnv reads fetcher configuration from environment variables,
// falling back to defaults, and validates the result.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	cfg.Timeout = config.GetEnvDuration("FETCH_TIMEOUT", cfg.Timeout)
	cfg.MaxBodySize = int64(config.GetEnvInt("FETCH_MAX_BODY_SIZE", int(cfg.MaxBodySize)))
	cfg.MaxRedirects = config.GetEnvInt("FETCH_MAX_REDIRECTS", cfg.MaxRedirects)
	cfg.DenyPrivateIPs = config.GetEnvBool("FETCH_DENY_PRIVATE_IPS", cfg.DenyPrivateIPs)
	cfg.UserAgent = config.GetEnvString("FETCH_USER_AGENT", cfg.UserAgent)
	cfg.RequestsPerSecond = config.GetEnvFloat("FETCH_REQUESTS_PER_SECOND", cfg.RequestsPerSecond)
	cfg.Burst = config.GetEnvInt("FETCH_BURST", cfg.Burst)
	cfg.BlockedHosts = config.GetEnvStringList("FETCH_BLOCKED_HOSTS", cfg.BlockedHosts)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration values are safe to run with.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.MaxBodySize < 1024 || c.MaxBodySize > 100*1024*1024 {
		return fmt.Errorf("max body size must be between 1KB and 100MB, got %d", c.MaxBodySize)
	}
	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests per second must be positive, got %v", c.RequestsPerSecond)
	}
	if c.Burst <= 0 {
		return fmt.Errorf("burst must be positive, got %d", c.Burst)
	}
	return nil
}
