package scraper_test

import (
	"testing"

	"pagewatch/internal/infra/scraper"
)

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		baseURL string
		want    string
	}{
		{
			name:    "root-relative path resolves against host",
			link:    "/a/b",
			baseURL: "https://example.com/x/",
			want:    "https://example.com/a/b",
		},
		{
			name:    "relative path resolves against base path",
			link:    "a/b",
			baseURL: "https://example.com/x/",
			want:    "https://example.com/x/a/b",
		},
		{
			name:    "absolute URL passes through unchanged",
			link:    "https://other.com/z",
			baseURL: "https://example.com/x/",
			want:    "https://other.com/z",
		},
		{
			name:    "protocol-relative URL passes through unchanged",
			link:    "//cdn.example.com/asset.js",
			baseURL: "https://example.com/",
			want:    "//cdn.example.com/asset.js",
		},
		{
			name:    "uppercase scheme passes through unchanged",
			link:    "HTTPS://other.com/z",
			baseURL: "https://example.com/",
			want:    "HTTPS://other.com/z",
		},
		{
			name:    "query and fragment survive resolution",
			link:    "/search?q=go#top",
			baseURL: "https://example.com/pages/",
			want:    "https://example.com/search?q=go#top",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scraper.ResolveURL(tt.link, tt.baseURL)
			if err != nil {
				t.Fatalf("ResolveURL() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveURL(%q, %q) = %q, want %q", tt.link, tt.baseURL, got, tt.want)
			}
		})
	}
}

func TestResolveURL_BadBase(t *testing.T) {
	if _, err := scraper.ResolveURL("/a", "://not-a-url"); err == nil {
		t.Fatal("expected error for unparseable base URL")
	}
}
