package entity

import (
	"net/url"
	"time"
)

// Source represents a registered web location that is monitored for newly
// published items. The crawl page is polled on a per-source cycle; the CSS
// selector identifies the element on that page that links to the newest item.
type Source struct {
	ID          int64
	Title       string
	URL         string // base URL, used to resolve relative item links
	CrawlURL    string
	CSSSelector string
	LastURL     string // most recently ingested item URL, empty until first check
	Category    string
	CycleSec    int
	Disabled    bool
}

// Validate checks that all fields required for registration are present and
// that the URLs are well formed. Missing fields are reported together in a
// single MissingFieldsError so the caller can surface them all at once.
func (s *Source) Validate() error {
	var missing []string
	if s.Title == "" {
		missing = append(missing, "title")
	}
	if s.URL == "" {
		missing = append(missing, "url")
	}
	if s.CrawlURL == "" {
		missing = append(missing, "crawlUrl")
	}
	if s.CSSSelector == "" {
		missing = append(missing, "cssSelector")
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	if err := ValidateURL(s.URL); err != nil {
		return err
	}
	return ValidateURL(s.CrawlURL)
}

// Cycle returns the polling interval, normalizing a missing or non-positive
// cycle_sec to the given default. Persisted rows from older deployments may
// carry a zero value.
func (s *Source) Cycle(defaultCycle time.Duration) time.Duration {
	if s.CycleSec <= 0 {
		return defaultCycle
	}
	return time.Duration(s.CycleSec) * time.Second
}

// ValidateURL checks that the given string parses as an absolute http(s) URL.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return &ValidationError{Field: "url", Message: "is not a valid URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "must use http or https"}
	}
	if u.Host == "" {
		return &ValidationError{Field: "url", Message: "is missing a host"}
	}
	return nil
}
