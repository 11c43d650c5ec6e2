// Package scraper extracts page metadata and latest-item links from HTML
// documents fetched over HTTP.
package scraper

import "context"

// Fetcher retrieves the raw body of a remote URL. Implemented by
// infra/fetcher.Client; abstracted here so scraping logic can be tested
// against canned bodies.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Scraper parses fetched HTML with CSS selectors. All methods are safe for
// concurrent use.
type Scraper struct {
	fetcher Fetcher
}

// New creates a Scraper backed by the given Fetcher.
func New(fetcher Fetcher) *Scraper {
	return &Scraper{fetcher: fetcher}
}
