package filter

import (
	"testing"

	"github.com/cmdward/cmdward/internal/catalog"
	"github.com/cmdward/cmdward/internal/matcher"
)

func TestFilterSeverityAllowList(t *testing.T) {
	cat := catalog.MustLoad()
	matches := matcher.MatchOne("git add .", cat)
	lowMatch := matcher.Match{
		Check: catalog.Check{ID: "test:low", Severity: catalog.Low},
	}
	matches = append(matches, lowMatch)

	opts := NewOptions([]catalog.Severity{catalog.Critical, catalog.High}, nil)
	kept := Filter(matches, opts)

	for _, m := range kept {
		if m.Check.Severity != catalog.Critical && m.Check.Severity != catalog.High {
			t.Errorf("kept match with disallowed severity %q", m.Check.Severity)
		}
	}
}

func TestFilterEmptyAllowListKeepsAll(t *testing.T) {
	matches := []matcher.Match{
		{Check: catalog.Check{ID: "a", Severity: catalog.Low}},
		{Check: catalog.Check{ID: "b", Severity: catalog.Critical}},
	}
	kept := Filter(matches, NewOptions(nil, nil))
	if len(kept) != 2 {
		t.Fatalf("expected both matches kept, got %d", len(kept))
	}
}

func TestFilterDropsOnFailingPredicate(t *testing.T) {
	matches := []matcher.Match{
		{
			Check: catalog.Check{
				ID:       "predicated",
				Severity: catalog.Medium,
				Predicates: []catalog.Predicate{
					func(map[string]string) bool { return false },
				},
			},
		},
	}
	kept := Filter(matches, NewOptions(nil, nil))
	if len(kept) != 0 {
		t.Errorf("expected predicate failure to drop the match, got %d kept", len(kept))
	}
}

func TestFilterKeepsOnPassingPredicate(t *testing.T) {
	matches := []matcher.Match{
		{
			Check: catalog.Check{
				ID:       "predicated",
				Severity: catalog.Medium,
				Predicates: []catalog.Predicate{
					func(map[string]string) bool { return true },
				},
			},
		},
	}
	kept := Filter(matches, NewOptions(nil, nil))
	if len(kept) != 1 {
		t.Errorf("expected predicate pass to keep the match, got %d kept", len(kept))
	}
}
