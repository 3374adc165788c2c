package checker

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/lukemcguire/zombiemd/result"
)

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Probe sends one HEAD request to target, bounded by timeout, and classifies
// the answer. It never returns an error: every failure is an Outcome.
func Probe(ctx context.Context, client Doer, target Target, timeout time.Duration) result.LinkResult {
	start := time.Now()

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	outcome := head(reqCtx, client, target.URL)

	res := result.NewLinkResult(target.URL, outcome)
	res.SourceDocument = target.Source
	res.IsExternal = target.IsExternal
	res.Elapsed = time.Since(start)
	return res
}

func head(ctx context.Context, client Doer, rawURL string) result.Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return result.TransportError(fmt.Errorf("create HEAD request: %w", err))
	}

	resp, err := client.Do(req)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	return result.Classify(resp, err)
}
