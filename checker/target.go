package checker

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/lukemcguire/zombiemd/urlutil"
)

// ErrFragmentOnly marks an in-document anchor such as "#usage". Anchors are
// never probed, even when a base URL would make them resolvable.
var ErrFragmentOnly = errors.New("fragment-only reference")

// Target is a validated, normalized link to probe.
type Target struct {
	URL        string // Normalized absolute http(s) URL; also the dedup key
	Source     string // Document the link was first found in
	IsExternal bool   // Host differs from the base URL's domain
}

// TargetSet is an insertion-ordered, deduplicated collection of Targets.
// It is built once before a run and not modified while a run is in progress.
type TargetSet struct {
	base    *url.URL
	targets []Target
	seen    map[string]struct{}
}

// NewTargetSet creates an empty set. When base is non-nil, relative link
// strings are resolved against it and targets outside its domain are
// flagged as external.
func NewTargetSet(base *url.URL) *TargetSet {
	return &TargetSet{
		base: base,
		seen: make(map[string]struct{}),
	}
}

// BuildTargets validates and deduplicates raw link strings, silently
// dropping the ones that are not checkable URLs.
func BuildTargets(raw []string, source string) *TargetSet {
	set := NewTargetSet(nil)
	for _, link := range raw {
		_, _ = set.Add(link, source)
	}
	return set
}

// Add validates raw and inserts it unless an equivalent URL is already present.
// It reports whether the set grew. An error means raw is not a checkable URL.
func (s *TargetSet) Add(raw, source string) (bool, error) {
	if urlutil.IsFragmentOnly(raw) {
		return false, fmt.Errorf("add target %q: %w", raw, ErrFragmentOnly)
	}

	ref := raw
	if s.base != nil {
		resolved, err := urlutil.ResolveReference(s.base, raw)
		if err != nil {
			return false, fmt.Errorf("add target %q: %w", raw, err)
		}
		ref = resolved
	}

	parsed, err := urlutil.ParseTarget(ref)
	if err != nil {
		return false, fmt.Errorf("add target %q: %w", raw, err)
	}

	key := parsed.String()
	if _, dup := s.seen[key]; dup {
		return false, nil
	}
	s.seen[key] = struct{}{}

	s.targets = append(s.targets, Target{
		URL:        key,
		Source:     source,
		IsExternal: s.base != nil && !urlutil.IsSameDomain(parsed, s.base.Hostname()),
	})
	return true, nil
}

// Len returns the number of distinct targets.
func (s *TargetSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.targets)
}

// Targets returns a copy of the targets in insertion order.
func (s *TargetSet) Targets() []Target {
	if s == nil {
		return nil
	}
	out := make([]Target, len(s.targets))
	copy(out, s.targets)
	return out
}

// Contains reports whether the normalized form of rawURL is in the set.
func (s *TargetSet) Contains(rawURL string) bool {
	if s == nil {
		return false
	}
	normalized, err := urlutil.Normalize(rawURL)
	if err != nil {
		return false
	}
	_, ok := s.seen[normalized]
	return ok
}

// filter returns a new set, sharing s's base, holding only targets keep accepts.
func (s *TargetSet) filter(keep func(Target) bool) *TargetSet {
	out := NewTargetSet(s.base)
	for _, target := range s.Targets() {
		if keep(target) {
			out.seen[target.URL] = struct{}{}
			out.targets = append(out.targets, target)
		}
	}
	return out
}
