package fetcher_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pagewatch/internal/infra/fetcher"
)

func testConfig() fetcher.Config {
	cfg := fetcher.DefaultConfig()
	// httptest servers listen on loopback
	cfg.DenyPrivateIPs = false
	cfg.RequestsPerSecond = 1000
	cfg.Burst = 1000
	return cfg
}

func TestClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "PagewatchBot/1.0" {
			t.Errorf("User-Agent = %q", got)
		}
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer server.Close()

	client := fetcher.New(testConfig())
	body, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch err=%v", err)
	}
	if !strings.Contains(string(body), "hello") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestClient_Fetch_Non200IsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := fetcher.New(testConfig())
	if _, err := client.Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestClient_Fetch_BodySizeLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64*1024)))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.MaxBodySize = 4096
	client := fetcher.New(cfg)

	body, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch err=%v", err)
	}
	if len(body) != 4096 {
		t.Fatalf("expected truncated body of 4096 bytes, got %d", len(body))
	}
}

func TestClient_Fetch_RejectsBadScheme(t *testing.T) {
	client := fetcher.New(testConfig())
	_, err := client.Fetch(context.Background(), "ftp://example.com/file")
	if !errors.Is(err, fetcher.ErrInvalidURL) {
		t.Fatalf("expected ErrInvalidURL, got %v", err)
	}
}

func TestClient_Fetch_DeniesPrivateIPs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	cfg := testConfig()
	cfg.DenyPrivateIPs = true
	client := fetcher.New(cfg)

	_, err := client.Fetch(context.Background(), server.URL)
	if !errors.Is(err, fetcher.ErrPrivateIP) {
		t.Fatalf("expected ErrPrivateIP for loopback server, got %v", err)
	}
}

func TestClient_Fetch_BlockedHost(t *testing.T) {
	cfg := testConfig()
	cfg.BlockedHosts = []string{"blocked.example.com"}
	client := fetcher.New(cfg)

	_, err := client.Fetch(context.Background(), "https://blocked.example.com/page")
	if !errors.Is(err, fetcher.ErrBlockedHost) {
		t.Fatalf("expected ErrBlockedHost, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := fetcher.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}

	cfg.MaxRedirects = 99
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range redirects")
	}
}
