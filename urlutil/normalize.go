// Package urlutil validates and normalizes link targets pulled out of
// Markdown documents.
package urlutil

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrEmptyURL is returned for an empty or whitespace-only link string.
	ErrEmptyURL = errors.New("empty URL")
	// ErrNotAbsolute is returned when a URL lacks a scheme or a host.
	ErrNotAbsolute = errors.New("URL must have both scheme and host")
	// ErrUnsupportedScheme is returned for anything other than http or https.
	ErrUnsupportedScheme = errors.New("URL scheme must be http or https")
)

// Normalize takes a raw URL string and returns a normalized version.
// Normalization includes:
// - Lowercasing the scheme and host
// - Stripping fragments (#section), which never reach the server
// - Preserving the path (including trailing slashes) and query parameters
//
// Returns an error if the input is empty, cannot be parsed, or is not absolute.
func Normalize(rawURL string) (string, error) {
	parsed, err := parseAbsolute(rawURL)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// ParseTarget validates rawURL as a checkable link target: an absolute
// http or https URL. The returned URL is normalized as by Normalize.
func ParseTarget(rawURL string) (*url.URL, error) {
	parsed, err := parseAbsolute(rawURL)
	if err != nil {
		return nil, err
	}
	if !IsHTTPScheme(parsed) {
		return nil, fmt.Errorf("parse target %q: %w", rawURL, ErrUnsupportedScheme)
	}
	return parsed, nil
}

func parseAbsolute(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, ErrEmptyURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("normalize URL %q: %w", rawURL, err)
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("normalize URL %q: %w", rawURL, ErrNotAbsolute)
	}

	parsed.Scheme = strings.ToLower(parsed.Scheme)
	parsed.Host = strings.ToLower(parsed.Host)
	parsed.Fragment = ""
	parsed.RawFragment = ""

	return parsed, nil
}
