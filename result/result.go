// Package result models link check outcomes and renders them as text, JSON, or CSV.
package result

import "time"

// LinkResult represents the result of checking a single link.
type LinkResult struct {
	URL            string        // The URL that was checked
	Outcome        Outcome       // Classified probe outcome
	ErrorCategory  ErrorCategory // Category classification of a failed outcome
	SourceDocument string        // The Markdown document where this link was first found
	IsExternal     bool          // Whether this link points outside the configured base URL's domain
	Elapsed        time.Duration // Time from dispatch to resolution
}

// NewLinkResult builds a LinkResult and fills in the error category.
func NewLinkResult(rawURL string, outcome Outcome) LinkResult {
	res := LinkResult{URL: rawURL, Outcome: outcome}
	if !outcome.IsOK() {
		res.ErrorCategory = ClassifyError(outcome.Cause, outcome.StatusCode)
	}
	return res
}

// Broken reports whether the link failed its check.
func (r LinkResult) Broken() bool { return !r.Outcome.IsOK() }

// CheckStats contains aggregate statistics for a checking run.
type CheckStats struct {
	TotalChecked int           // Total number of links checked
	BrokenCount  int           // Number of broken links found
	Duration     time.Duration // Total time taken for the run
}

// Result represents the complete output of a checking run.
type Result struct {
	Links []LinkResult // Every checked link, in resolution order
	Stats CheckStats   // Aggregate statistics
}

// BrokenLinks returns the failed links in resolution order.
func (r *Result) BrokenLinks() []LinkResult {
	if r == nil {
		return nil
	}
	broken := make([]LinkResult, 0, r.Stats.BrokenCount)
	for _, link := range r.Links {
		if link.Broken() {
			broken = append(broken, link)
		}
	}
	return broken
}
