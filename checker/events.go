package checker

import (
	"context"

	"github.com/lukemcguire/zombiemd/result"
)

// CheckEvent reports progress after a single link resolves.
type CheckEvent struct {
	URL           string
	Outcome       result.Outcome
	ErrorCategory result.ErrorCategory
	Checked       int
	Broken        int
	Total         int
}

// ProgressNotifier returns an onResult callback that turns each result into a
// cumulative CheckEvent on progressCh. Sends give up once ctx is done so a
// departed reader cannot stall the run. The callback must not be invoked
// concurrently; Run serializes its onResult calls.
func ProgressNotifier(ctx context.Context, progressCh chan<- CheckEvent, total int) func(result.LinkResult) {
	var checked, broken int
	return func(link result.LinkResult) {
		checked++
		if link.Broken() {
			broken++
		}
		evt := CheckEvent{
			URL:           link.URL,
			Outcome:       link.Outcome,
			ErrorCategory: link.ErrorCategory,
			Checked:       checked,
			Broken:        broken,
			Total:         total,
		}
		select {
		case progressCh <- evt:
		case <-ctx.Done():
		}
	}
}
