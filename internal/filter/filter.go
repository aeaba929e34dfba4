// Package filter applies severity allow-listing and runtime predicate
// evaluation to a raw set of catalog matches.
package filter

import (
	"github.com/cmdward/cmdward/internal/catalog"
	"github.com/cmdward/cmdward/internal/matcher"
)

// Options mirrors the caller-supplied knobs for a single validation call.
// An empty AllowedSeverities means "no severity filter"; an empty
// DenyPatternIDs means "nothing force-denies".
type Options struct {
	AllowedSeverities map[catalog.Severity]bool
	DenyPatternIDs    map[string]bool
}

// NewOptions builds an Options from plain slices, which is the more
// convenient shape for callers at the API boundary.
func NewOptions(allowedSeverities []catalog.Severity, denyPatternIDs []string) Options {
	opts := Options{
		AllowedSeverities: make(map[catalog.Severity]bool, len(allowedSeverities)),
		DenyPatternIDs:    make(map[string]bool, len(denyPatternIDs)),
	}
	for _, s := range allowedSeverities {
		opts.AllowedSeverities[s] = true
	}
	for _, id := range denyPatternIDs {
		opts.DenyPatternIDs[id] = true
	}
	return opts
}

// Filter applies, in order: the severity allow-list, then runtime
// predicate evaluation. The deny-list itself is not applied here — it
// does not remove matches, it upgrades the aggregate verdict, which is
// the decision function's job (see internal/decision).
func Filter(matches []matcher.Match, opts Options) []matcher.Match {
	kept := make([]matcher.Match, 0, len(matches))
	for _, m := range matches {
		if !severityAllowed(m.Check.Severity, opts.AllowedSeverities) {
			continue
		}
		if !predicatesPass(m) {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

func severityAllowed(s catalog.Severity, allowed map[catalog.Severity]bool) bool {
	if len(allowed) == 0 {
		return true
	}
	return allowed[s]
}

// predicatesPass evaluates every predicate attached to the match's check.
// A predicate that cannot determine an answer must itself return false
// (fail-open on evaluation error); any single false predicate drops the
// match.
func predicatesPass(m matcher.Match) bool {
	for _, p := range m.Check.Predicates {
		if !p(m.Captures) {
			return false
		}
	}
	return true
}
