package scraper

import (
	"fmt"
	"net/url"
	"regexp"
)

// absoluteURLPattern matches URLs that already carry a scheme or are
// protocol-relative ("//host/path").
var absoluteURLPattern = regexp.MustCompile(`(?i)^(?:[a-z]+:)?//`)

// ResolveURL resolves a possibly-relative link against baseURL. Links that
// already start with a scheme or "//" pass through unchanged.
func ResolveURL(link, baseURL string) (string, error) {
	if absoluteURLPattern.MatchString(link) {
		return link, nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("ResolveURL: parse base URL %q: %w", baseURL, err)
	}

	ref, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("ResolveURL: parse link %q: %w", link, err)
	}

	return base.ResolveReference(ref).String(), nil
}
