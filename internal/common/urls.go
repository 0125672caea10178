package common

import (
	"fmt"
	"net/url"
	"strings"
)

// excludedPrefixes lists URL scheme prefixes for browser-internal pages.
// Tabs on these pages are never classified.
var excludedPrefixes = []string{
	"chrome://",
	"chrome-extension://",
	"edge://",
	"brave://",
	"about:",
	"devtools://",
	"view-source:",
}

// IsExcludedURL reports whether a URL points at a browser-internal page.
func IsExcludedURL(rawURL string) bool {
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(rawURL, prefix) {
			return true
		}
	}
	return false
}

// DomainFromURL extracts the host name from a URL: no scheme, path, or port.
func DomainFromURL(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	host := parsed.Hostname()
	if host == "" {
		return "", fmt.Errorf("%w: no host in %q", ErrInvalidURL, rawURL)
	}

	return host, nil
}
