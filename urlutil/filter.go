package urlutil

import (
	"fmt"
	"net/url"
	"strings"
)

// IsSameDomain checks if target belongs to the same domain as baseHost.
// Subdomains are considered same-domain (e.g., blog.example.com matches example.com).
func IsSameDomain(target *url.URL, baseHost string) bool {
	if target == nil {
		return false
	}

	host := strings.ToLower(target.Hostname())
	baseHost = strings.ToLower(baseHost)

	return host == baseHost || strings.HasSuffix(host, "."+baseHost)
}

// IsHTTPScheme returns true if the URL has an http or https scheme.
func IsHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

// IsFragmentOnly reports whether ref is an in-document anchor such as "#usage".
func IsFragmentOnly(ref string) bool {
	return strings.HasPrefix(strings.TrimSpace(ref), "#")
}

// ResolveReference resolves a possibly-relative ref against base.
// If ref is absolute, it is returned as-is.
func ResolveReference(base *url.URL, ref string) (string, error) {
	refURL, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", fmt.Errorf("parse ref URL %q: %w", ref, err)
	}
	if refURL.IsAbs() || base == nil {
		return refURL.String(), nil
	}
	return base.ResolveReference(refURL).String(), nil
}
