package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pagewatch/internal/infra/fetcher"
)

// CrawlPolicyConfig represents the outbound crawl policy, loaded from YAML.
// It constrains how the fetcher talks to remote sites.
type CrawlPolicyConfig struct {
	Crawl struct {
		UserAgent      string   `yaml:"user_agent"`
		DenyPrivateIPs *bool    `yaml:"deny_private_ips"`
		BlockedHosts   []string `yaml:"blocked_hosts"`
		RateLimit      struct {
			RequestsPerSecond float64 `yaml:"requests_per_second"`
			Burst             int     `yaml:"burst"`
		} `yaml:"rate_limit"`
		MaxBodyMB int `yaml:"max_body_mb"`
	} `yaml:"crawl"`
}

// LoadCrawlPolicy loads the crawl policy from a YAML file.
// The path parameter is expected to come from a trusted source (command-line argument or hardcoded default).
func LoadCrawlPolicy(path string) (*CrawlPolicyConfig, error) {
	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read crawl policy file: %w", err)
	}

	var config CrawlPolicyConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse crawl policy: %w", err)
	}

	if err := validateCrawlPolicy(&config); err != nil {
		return nil, fmt.Errorf("crawl policy validation failed: %w", err)
	}

	return &config, nil
}

// validateCrawlPolicy validates the loaded policy.
func validateCrawlPolicy(config *CrawlPolicyConfig) error {
	if config.Crawl.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must not be negative")
	}
	if config.Crawl.RateLimit.Burst < 0 {
		return fmt.Errorf("burst must not be negative")
	}
	if config.Crawl.MaxBodyMB < 0 {
		return fmt.Errorf("max_body_mb must not be negative")
	}
	return nil
}

// BlocksHost reports whether the given hostname appears in the blocked list.
func (c *CrawlPolicyConfig) BlocksHost(host string) bool {
	for _, blocked := range c.Crawl.BlockedHosts {
		if blocked == host {
			return true
		}
	}
	return false
}

// ApplyTo overlays the policy onto a fetcher configuration. Only fields set
// in the policy file override the existing values.
func (c *CrawlPolicyConfig) ApplyTo(cfg *fetcher.Config) {
	if c.Crawl.UserAgent != "" {
		cfg.UserAgent = c.Crawl.UserAgent
	}
	if c.Crawl.DenyPrivateIPs != nil {
		cfg.DenyPrivateIPs = *c.Crawl.DenyPrivateIPs
	}
	if len(c.Crawl.BlockedHosts) > 0 {
		cfg.BlockedHosts = append(cfg.BlockedHosts, c.Crawl.BlockedHosts...)
	}
	if c.Crawl.RateLimit.RequestsPerSecond > 0 {
		cfg.RequestsPerSecond = c.Crawl.RateLimit.RequestsPerSecond
	}
	if c.Crawl.RateLimit.Burst > 0 {
		cfg.Burst = c.Crawl.RateLimit.Burst
	}
	if c.Crawl.MaxBodyMB > 0 {
		cfg.MaxBodySize = int64(c.Crawl.MaxBodyMB) * 1024 * 1024
	}
}
