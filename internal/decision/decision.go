// Package decision turns a filtered set of catalog matches into the final
// tri-state validation verdict.
package decision

import (
	"github.com/cmdward/cmdward/internal/catalog"
	"github.com/cmdward/cmdward/internal/filter"
	"github.com/cmdward/cmdward/internal/matcher"
)

// MatchRecord is the result-payload projection of a Check: everything a
// caller needs to render or log a match, with no regex state attached.
type MatchRecord struct {
	ID          string
	Group       string
	Severity    catalog.Severity
	Description string
}

// Result is the outcome of validating one command.
type Result struct {
	Matches        []MatchRecord
	ShouldChallenge bool
	ShouldDeny      bool
}

// Decide applies the decision function to a filtered match set:
//
//	should_challenge = matches non-empty
//	should_deny      = should_challenge AND some match.id is in the deny list
//
// A deny verdict always implies a challenge verdict: should_deny=true with
// should_challenge=false must never be produced.
func Decide(kept []matcher.Match, opts filter.Options) Result {
	records := make([]MatchRecord, len(kept))
	for i, m := range kept {
		records[i] = MatchRecord{
			ID:          m.Check.ID,
			Group:       m.Check.Group,
			Severity:    m.Check.Severity,
			Description: m.Check.Description,
		}
	}

	shouldChallenge := len(records) > 0

	shouldDeny := false
	if shouldChallenge {
		for _, r := range records {
			if opts.DenyPatternIDs[r.ID] {
				shouldDeny = true
				break
			}
		}
	}

	return Result{
		Matches:         records,
		ShouldChallenge: shouldChallenge,
		ShouldDeny:      shouldDeny,
	}
}

// HighestSeverity returns the highest severity among result's matches,
// defaulting to Medium when there are none.
func HighestSeverity(result Result) catalog.Severity {
	severities := make([]catalog.Severity, len(result.Matches))
	for i, m := range result.Matches {
		severities[i] = m.Severity
	}
	return catalog.Highest(severities)
}

// Descriptions returns the Description of every match in result, in order.
func Descriptions(result Result) []string {
	out := make([]string, len(result.Matches))
	for i, m := range result.Matches {
		out[i] = m.Description
	}
	return out
}
