package fetcher

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Sentinel errors surfaced by URL validation.
var (
	// ErrInvalidURL indicates the URL is malformed or uses a forbidden scheme.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrPrivateIP indicates the hostname resolves to a private address.
	ErrPrivateIP = errors.New("URL resolves to private IP")

	// ErrTooManyRedirects indicates the redirect limit was exceeded.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrBlockedHost indicates the hostname is on the configured blocklist.
	ErrBlockedHost = errors.New("host is blocked by crawl policy")
)

// validateURL validates a URL before an outbound request is made. It blocks
// non-http(s) schemes, blocklisted hostnames, and, when cfg.DenyPrivateIPs is
// set, hostnames resolving to loopback, private, or link-local addresses
// (SSRF prevention).
func validateURL(urlStr string, cfg Config) error {
	u, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("%w: parse error: %v", ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme '%s' not allowed (only http/https)", ErrInvalidURL, u.Scheme)
	}

	hostname := u.Hostname()
	if hostname == "" {
		return fmt.Errorf("%w: empty hostname", ErrInvalidURL)
	}

	for _, blocked := range cfg.BlockedHosts {
		if hostname == blocked {
			return fmt.Errorf("%w: %s", ErrBlockedHost, hostname)
		}
	}

	if !cfg.DenyPrivateIPs {
		return nil
	}

	ips, err := net.LookupIP(hostname)
	if err != nil {
		return fmt.Errorf("%w: DNS lookup failed for %s: %v", ErrInvalidURL, hostname, err)
	}

	for _, ip := range ips {
		if isPrivateIP(ip) {
			return fmt.Errorf("%w: hostname '%s' resolves to %s", ErrPrivateIP, hostname, ip.String())
		}
	}

	return nil
}

// isPrivateIP reports whether the address is loopback, private, link-local,
// or unspecified, for both IPv4 and IPv6.
func isPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified()
}
