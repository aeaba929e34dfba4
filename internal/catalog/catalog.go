// Package catalog holds the embedded, immutable set of named checks that
// the gate matches candidate commands against.
package catalog

import (
	"fmt"
	"regexp"
	"sort"
)

// Severity is an ordered risk label.
type Severity string

const (
	Low      Severity = "low"
	Medium   Severity = "medium"
	High     Severity = "high"
	Critical Severity = "critical"
)

var severityRank = map[Severity]int{
	Low:      0,
	Medium:   1,
	High:     2,
	Critical: 3,
}

// Rank returns the ordinal position of s under low < medium < high < critical.
// Unknown or empty severities rank as Medium.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return severityRank[Medium]
}

// Highest returns the most severe value in severities, defaulting to Medium
// when the slice is empty.
func Highest(severities []Severity) Severity {
	if len(severities) == 0 {
		return Medium
	}
	best := severities[0]
	for _, s := range severities[1:] {
		if s.Rank() > best.Rank() {
			best = s
		}
	}
	return best
}

// ChallengeHint is a caller-suggested challenge kind for a check. Empty
// means "use the caller's configured default".
type ChallengeHint string

const (
	HintMath    ChallengeHint = "math"
	HintWord    ChallengeHint = "word"
	HintYes     ChallengeHint = "yes"
	HintBlock   ChallengeHint = "block"
	HintDefault ChallengeHint = ""
)

// Predicate is a runtime condition attached to a Check. It receives the
// named capture groups of the match that fired and reports whether the
// check should still apply. A predicate that can't determine an answer
// (e.g. a filesystem probe failure) must return false — predicates fail
// open on evaluation error: the match is simply dropped.
type Predicate func(captures map[string]string) bool

// Check is a single immutable named rule in the catalog.
type Check struct {
	ID             string
	Group          string
	Pattern        *regexp.Regexp
	Severity       Severity
	Description    string
	ChallengeHint  ChallengeHint
	Predicates     []Predicate
}

// CatalogError reports a rule that failed to compile at load time.
type CatalogError struct {
	RuleID string
	Reason string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog: rule %q failed to load: %s", e.RuleID, e.Reason)
}

// Catalog is the complete, read-only set of checks available to the
// matcher. It is built once at process start and never mutated.
type Catalog struct {
	checks    []Check
	byGroup   map[string][]Check
	byID      map[string]Check
	groupList []string
}

// Load compiles every built-in rule definition against the real
// filesystem (RealFileExists) and returns a ready-to-use Catalog. See
// LoadWithExists to inject a different FileExists capability, e.g. in
// tests that must not touch disk.
func Load() (*Catalog, error) {
	return LoadWithExists(RealFileExists)
}

// LoadWithExists compiles every built-in rule definition, wiring exists
// in as the FileExists capability any rule predicate needs (see
// fs:protected-path-write), and returns a ready-to-use Catalog, or a
// *CatalogError if any rule's regular expression is invalid or if a rule
// ID is reused. No filesystem or network I/O happens here beyond what
// exists itself performs when a predicate runs.
func LoadWithExists(exists Exists) (*Catalog, error) {
	defs := allDefinitions(exists)

	c := &Catalog{
		byGroup: make(map[string][]Check),
		byID:    make(map[string]Check),
	}

	seenGroups := make(map[string]bool)

	for _, d := range defs {
		if _, dup := c.byID[d.id]; dup {
			return nil, &CatalogError{RuleID: d.id, Reason: "duplicate check id"}
		}

		re, err := regexp.Compile(d.pattern)
		if err != nil {
			return nil, &CatalogError{RuleID: d.id, Reason: err.Error()}
		}

		check := Check{
			ID:            d.id,
			Group:         d.group,
			Pattern:       re,
			Severity:      d.severity,
			Description:   d.description,
			ChallengeHint: d.hint,
			Predicates:    d.predicates,
		}

		c.checks = append(c.checks, check)
		c.byID[d.id] = check
		c.byGroup[d.group] = append(c.byGroup[d.group], check)

		if !seenGroups[d.group] {
			seenGroups[d.group] = true
			c.groupList = append(c.groupList, d.group)
		}
	}

	sort.Strings(c.groupList)

	return c, nil
}

// MustLoad is Load, panicking on failure. Intended for package-level
// catalog initialization where a bad built-in rule is a programmer error
// that should fail fast at startup.
func MustLoad() *Catalog {
	return MustLoadWithExists(RealFileExists)
}

// MustLoadWithExists is LoadWithExists, panicking on failure.
func MustLoadWithExists(exists Exists) *Catalog {
	c, err := LoadWithExists(exists)
	if err != nil {
		panic(err)
	}
	return c
}

// All returns every check in the catalog, in stable load order.
func (c *Catalog) All() []Check {
	out := make([]Check, len(c.checks))
	copy(out, c.checks)
	return out
}

// Groups returns the distinct group values present in the catalog, sorted.
func (c *Catalog) Groups() []string {
	out := make([]string, len(c.groupList))
	copy(out, c.groupList)
	return out
}

// ByGroup returns every check whose Group equals g, in stable load order.
func (c *Catalog) ByGroup(g string) []Check {
	existing := c.byGroup[g]
	out := make([]Check, len(existing))
	copy(out, existing)
	return out
}

// ByID returns the check with the given ID, if any.
func (c *Catalog) ByID(id string) (Check, bool) {
	check, ok := c.byID[id]
	return check, ok
}

// Len reports the total number of checks in the catalog.
func (c *Catalog) Len() int { return len(c.checks) }
