package checker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// cachedRobots stores parsed robots.txt data with fetch timestamp.
type cachedRobots struct {
	data      *robotstxt.RobotsData
	fetchedAt time.Time
}

// RobotsChecker fetches and caches robots.txt rules per host.
type RobotsChecker struct {
	client   *http.Client
	cache    sync.Map // host string -> *cachedRobots
	cacheTTL time.Duration
}

// NewRobotsChecker creates a RobotsChecker with the given HTTP client.
func NewRobotsChecker(client *http.Client) *RobotsChecker {
	return &RobotsChecker{
		client:   client,
		cacheTTL: time.Hour,
	}
}

// Allowed reports whether userAgent may fetch rawURL according to the
// host's robots.txt. It fails open: any fetch or parse problem allows the
// URL and is returned as an error for the caller to surface.
func (r *RobotsChecker) Allowed(ctx context.Context, rawURL, userAgent string) (bool, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return true, fmt.Errorf("parse URL: %w", err)
	}

	host := parsedURL.Host
	if host == "" {
		return true, nil
	}

	if data, ok := r.lookup(host); ok {
		if data == nil {
			return true, nil
		}
		return data.TestAgent(parsedURL.Path, userAgent), nil
	}

	data, err := r.fetch(ctx, parsedURL.Scheme, host)
	r.cache.Store(host, &cachedRobots{data: data, fetchedAt: time.Now()})
	if err != nil || data == nil {
		return true, err
	}
	return data.TestAgent(parsedURL.Path, userAgent), nil
}

// lookup returns the cached rules for host. A nil result with ok set means
// "allow all" was cached.
func (r *RobotsChecker) lookup(host string) (*robotstxt.RobotsData, bool) {
	cached, ok := r.cache.Load(host)
	if !ok {
		return nil, false
	}
	entry, ok := cached.(*cachedRobots)
	if !ok || entry == nil || time.Since(entry.fetchedAt) >= r.cacheTTL {
		r.cache.Delete(host)
		return nil, false
	}
	return entry.data, true
}

// fetch downloads and parses robots.txt. A nil result means allow-all
// (missing file, server error, or any failure).
func (r *RobotsChecker) fetch(ctx context.Context, scheme, host string) (*robotstxt.RobotsData, error) {
	robotsURL := fmt.Sprintf("%s://%s/robots.txt", scheme, host)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create robots.txt request for host %s: %w", host, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt for host %s: %w", host, err)
	}

	body, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if readErr != nil {
		return nil, fmt.Errorf("read robots.txt body for host %s: %w", host, readErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("close robots.txt response body for host %s: %w", host, closeErr)
	}

	// 404: robots.txt doesn't exist. 5xx: fail open.
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode >= 500 {
		return nil, nil
	}

	robots, err := robotstxt.FromStatusAndBytes(resp.StatusCode, body)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt for host %s: %w", host, err)
	}
	return robots, nil
}

// ClearCache removes all cached robots.txt entries.
func (r *RobotsChecker) ClearCache() {
	r.cache.Range(func(key, _ any) bool {
		r.cache.Delete(key)
		return true
	})
}

// FilterAllowed returns the subset of targets that robots.txt permits for the
// configured user agent, plus the targets it removed. Lookup failures keep the
// target and are logged as warnings. It must run before Check; a run's target
// set is fixed once dispatched.
func (c *Checker) FilterAllowed(ctx context.Context, targets *TargetSet) (*TargetSet, []Target) {
	var skipped []Target
	allowed := targets.filter(func(target Target) bool {
		ok, err := c.robots.Allowed(ctx, target.URL, c.cfg.UserAgent)
		if err != nil {
			c.logger.Warn("robots.txt check failed, allowing", c.logger.Args("url", target.URL, "error", err))
		}
		if !ok {
			skipped = append(skipped, target)
			c.logger.Info("skipping target disallowed by robots.txt", c.logger.Args("url", target.URL))
		}
		return ok
	})
	return allowed, skipped
}
