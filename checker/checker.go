// Package checker verifies link targets concurrently. One HEAD probe is
// dispatched per distinct URL, results are delivered as they arrive, and a
// completion callback fires exactly once after the last probe resolves.
package checker

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"

	"github.com/lukemcguire/zombiemd/logx"
	"github.com/lukemcguire/zombiemd/result"
)

const (
	// DefaultTimeout bounds each individual probe.
	DefaultTimeout = 2 * time.Second
	// DefaultUserAgent identifies the checker to robots.txt rules.
	DefaultUserAgent = "zombiemd/1.0 (+https://github.com/lukemcguire/zombiemd)"
)

// Config holds checker configuration.
type Config struct {
	Timeout     time.Duration // Per-probe timeout (default 2s)
	MaxInFlight int           // Upper bound on simultaneous probes; 0 means one goroutine per target at once
	UserAgent   string        // Agent name matched against robots.txt
}

// DefaultConfig returns a Config with the reference defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Checker runs link checks. It holds no per-run state and may be reused.
type Checker struct {
	cfg    Config
	client Doer
	robots *RobotsChecker
	logger *pterm.Logger
}

// New creates a Checker. A nil client uses a fresh *http.Client with the
// platform's default redirect policy; a nil logger discards output.
func New(cfg Config, client Doer, logger *pterm.Logger) *Checker {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxInFlight < 0 {
		cfg.MaxInFlight = 0
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if client == nil {
		client = &http.Client{}
	}
	if logger == nil {
		logger = logx.Discard()
	}

	return &Checker{
		cfg:    cfg,
		client: client,
		robots: NewRobotsChecker(&http.Client{Timeout: cfg.Timeout}),
		logger: logger,
	}
}

// Config returns the effective configuration after defaults were applied.
func (c *Checker) Config() Config {
	return c.cfg
}

// Check probes every target concurrently and returns without waiting.
//
// onResult is invoked once per target, possibly from many goroutines at once.
// onDone is invoked exactly once, after every onResult call has returned;
// for an empty set it is invoked before Check returns. Each target's result
// is delivered before that target leaves the outstanding set, and only the
// removal that empties the set triggers onDone.
//
// Cancelling ctx makes in-flight probes resolve as transport errors; it does
// not suppress any result or the completion callback.
func (c *Checker) Check(ctx context.Context, targets *TargetSet, onResult func(result.LinkResult), onDone func()) {
	list := targets.Targets()
	outstanding := newOutstandingSet(list)

	c.logger.Debug("dispatching probes", c.logger.Args(
		"targets", len(list),
		"timeout", c.cfg.Timeout,
		"max_in_flight", c.cfg.MaxInFlight,
	))

	if outstanding.Len() == 0 {
		onDone()
		return
	}

	var group errgroup.Group
	if c.cfg.MaxInFlight > 0 {
		group.SetLimit(c.cfg.MaxInFlight)
	}

	go func() {
		for _, target := range list {
			group.Go(func() error {
				link := Probe(ctx, c.client, target, c.cfg.Timeout)
				c.logger.Trace("probe resolved", c.logger.Args(
					"url", link.URL,
					"outcome", link.Outcome.String(),
					"elapsed", link.Elapsed,
				))

				onResult(link)
				if outstanding.Remove(target.URL) {
					onDone()
				}
				return nil
			})
		}
		_ = group.Wait()
	}()
}

// Run checks targets and blocks until every probe has resolved. onResult may
// be nil; when set, it is called for each result as it arrives, one call at a time.
func (c *Checker) Run(ctx context.Context, targets *TargetSet, onResult func(result.LinkResult)) *result.Result {
	start := time.Now()

	var mu sync.Mutex
	links := make([]result.LinkResult, 0, targets.Len())
	broken := 0
	done := make(chan struct{})

	c.Check(ctx, targets, func(link result.LinkResult) {
		mu.Lock()
		defer mu.Unlock()

		links = append(links, link)
		if link.Broken() {
			broken++
		}
		if onResult != nil {
			onResult(link)
		}
	}, func() {
		close(done)
	})

	<-done

	mu.Lock()
	defer mu.Unlock()

	c.logger.Debug("link checking done", c.logger.Args(
		"checked", len(links),
		"broken", broken,
		"duration", time.Since(start),
	))

	return &result.Result{
		Links: links,
		Stats: result.CheckStats{
			TotalChecked: len(links),
			BrokenCount:  broken,
			Duration:     time.Since(start),
		},
	}
}
