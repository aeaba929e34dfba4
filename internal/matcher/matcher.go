// Package matcher evaluates catalog checks against a single sub-command.
package matcher

import (
	"github.com/cmdward/cmdward/internal/catalog"
)

// Match pairs a fired Check with the named capture groups from the text
// that made it fire, so the filter pipeline can evaluate the check's
// runtime predicates without re-running the regex.
type Match struct {
	Check    catalog.Check
	Captures map[string]string
}

// MatchOne tests every check in cat against part and returns one Match
// per check whose pattern fires, in the catalog's stable iteration order.
// A check matches at most once per part — duplicate regex hits on the
// same part are not emitted.
func MatchOne(part string, cat *catalog.Catalog) []Match {
	var matches []Match
	for _, check := range cat.All() {
		loc := check.Pattern.FindStringSubmatchIndex(part)
		if loc == nil {
			continue
		}
		matches = append(matches, Match{
			Check:    check,
			Captures: namedCaptures(check, part, loc),
		})
	}
	return matches
}

// MatchAll runs MatchOne over every part and concatenates the results in
// part order, then check order within each part.
func MatchAll(parts []string, cat *catalog.Catalog) []Match {
	var all []Match
	for _, part := range parts {
		all = append(all, MatchOne(part, cat)...)
	}
	return all
}

func namedCaptures(check catalog.Check, part string, loc []int) map[string]string {
	names := check.Pattern.SubexpNames()
	if len(names) <= 1 {
		return nil
	}
	captures := make(map[string]string)
	for i, name := range names {
		if name == "" {
			continue
		}
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 || end < 0 {
			continue
		}
		captures[name] = part[start:end]
	}
	return captures
}
