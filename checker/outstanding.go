package checker

import "sync"

// outstandingSet tracks targets whose probes have not resolved yet.
// It only ever shrinks; Remove reports true for exactly one call, the one
// that takes it from one element to zero.
type outstandingSet struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

func newOutstandingSet(targets []Target) *outstandingSet {
	pending := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		pending[target.URL] = struct{}{}
	}
	return &outstandingSet{pending: pending}
}

// Remove deletes key and reports whether this call emptied the set.
// Removing a key that is not pending is a no-op returning false.
func (o *outstandingSet) Remove(key string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.pending[key]; !ok {
		return false
	}
	delete(o.pending, key)
	return len(o.pending) == 0
}

// Len returns the number of unresolved targets.
func (o *outstandingSet) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.pending)
}
