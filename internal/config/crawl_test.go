package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pagewatch/internal/infra/fetcher"
)

func TestLoadCrawlPolicy(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name        string
		configYAML  string
		expectError bool
		errorMsg    string
		validate    func(*testing.T, *CrawlPolicyConfig)
	}{
		{
			name: "valid policy",
			configYAML: `crawl:
  user_agent: "CustomBot/2.0"
  deny_private_ips: false
  blocked_hosts:
    - "tracker.example.com"
    - "ads.example.net"
  rate_limit:
    requests_per_second: 2.5
    burst: 5
  max_body_mb: 20
`,
			expectError: false,
			validate: func(t *testing.T, config *CrawlPolicyConfig) {
				if config.Crawl.UserAgent != "CustomBot/2.0" {
					t.Errorf("expected user_agent 'CustomBot/2.0', got '%s'", config.Crawl.UserAgent)
				}
				if config.Crawl.DenyPrivateIPs == nil || *config.Crawl.DenyPrivateIPs != false {
					t.Error("expected deny_private_ips false")
				}
				if len(config.Crawl.BlockedHosts) != 2 {
					t.Errorf("expected 2 blocked hosts, got %d", len(config.Crawl.BlockedHosts))
				}
				if config.Crawl.RateLimit.RequestsPerSecond != 2.5 {
					t.Errorf("expected requests_per_second 2.5, got %v", config.Crawl.RateLimit.RequestsPerSecond)
				}
				if config.Crawl.MaxBodyMB != 20 {
					t.Errorf("expected max_body_mb 20, got %d", config.Crawl.MaxBodyMB)
				}
			},
		},
		{
			name:        "empty policy keeps defaults",
			configYAML:  `crawl: {}`,
			expectError: false,
			validate: func(t *testing.T, config *CrawlPolicyConfig) {
				if config.Crawl.DenyPrivateIPs != nil {
					t.Error("expected deny_private_ips to be unset")
				}
			},
		},
		{
			name: "negative rate limit",
			configYAML: `crawl:
  rate_limit:
    requests_per_second: -1
`,
			expectError: true,
			errorMsg:    "requests_per_second must not be negative",
		},
		{
			name:        "malformed yaml",
			configYAML:  "crawl: [unclosed",
			expectError: true,
			errorMsg:    "failed to parse crawl policy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.configYAML), 0o644); err != nil {
				t.Fatal(err)
			}

			config, err := LoadCrawlPolicy(path)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errorMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, config)
			}
		})
	}
}

func TestLoadCrawlPolicy_MissingFile(t *testing.T) {
	if _, err := LoadCrawlPolicy("/nonexistent/policy.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCrawlPolicyConfig_BlocksHost(t *testing.T) {
	var config CrawlPolicyConfig
	config.Crawl.BlockedHosts = []string{"blocked.example.com"}

	if !config.BlocksHost("blocked.example.com") {
		t.Error("expected blocked.example.com to be blocked")
	}
	if config.BlocksHost("open.example.com") {
		t.Error("expected open.example.com to be allowed")
	}
}

func TestCrawlPolicyConfig_ApplyTo(t *testing.T) {
	deny := false
	var policy CrawlPolicyConfig
	policy.Crawl.UserAgent = "CustomBot/2.0"
	policy.Crawl.DenyPrivateIPs = &deny
	policy.Crawl.BlockedHosts = []string{"tracker.example.com"}
	policy.Crawl.RateLimit.RequestsPerSecond = 2
	policy.Crawl.RateLimit.Burst = 4
	policy.Crawl.MaxBodyMB = 20

	cfg := fetcher.DefaultConfig()
	policy.ApplyTo(&cfg)

	if cfg.UserAgent != "CustomBot/2.0" {
		t.Errorf("UserAgent = %q", cfg.UserAgent)
	}
	if cfg.DenyPrivateIPs {
		t.Error("DenyPrivateIPs should be overridden to false")
	}
	if len(cfg.BlockedHosts) != 1 || cfg.BlockedHosts[0] != "tracker.example.com" {
		t.Errorf("BlockedHosts = %v", cfg.BlockedHosts)
	}
	if cfg.RequestsPerSecond != 2 {
		t.Errorf("RequestsPerSecond = %v", cfg.RequestsPerSecond)
	}
	if cfg.Burst != 4 {
		t.Errorf("Burst = %d", cfg.Burst)
	}
	if cfg.MaxBodySize != 20*1024*1024 {
		t.Errorf("MaxBodySize = %d", cfg.MaxBodySize)
	}
}

func TestCrawlPolicyConfig_ApplyTo_EmptyPolicyKeepsDefaults(t *testing.T) {
	var policy CrawlPolicyConfig

	cfg := fetcher.DefaultConfig()
	want := fetcher.DefaultConfig()
	policy.ApplyTo(&cfg)

	if cfg.UserAgent != want.UserAgent || cfg.RequestsPerSecond != want.RequestsPerSecond ||
		cfg.MaxBodySize != want.MaxBodySize || !cfg.DenyPrivateIPs {
		t.Errorf("empty policy changed defaults: %+v", cfg)
	}
}
