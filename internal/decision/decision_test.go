package decision

import (
	"testing"

	"github.com/cmdward/cmdward/internal/catalog"
	"github.com/cmdward/cmdward/internal/filter"
	"github.com/cmdward/cmdward/internal/matcher"
)

func TestDecideNoMatchesAllows(t *testing.T) {
	result := Decide(nil, filter.NewOptions(nil, nil))
	if result.ShouldChallenge {
		t.Error("expected should_challenge=false for empty match set")
	}
	if result.ShouldDeny {
		t.Error("expected should_deny=false for empty match set")
	}
}

func TestDecideMatchesChallenge(t *testing.T) {
	matches := []matcher.Match{
		{Check: catalog.Check{ID: "fs:recursively_delete", Severity: catalog.Critical}},
	}
	result := Decide(matches, filter.NewOptions(nil, nil))
	if !result.ShouldChallenge {
		t.Error("expected should_challenge=true")
	}
	if result.ShouldDeny {
		t.Error("expected should_deny=false without a deny-list hit")
	}
}

func TestDecideDenyListUpgradesToDeny(t *testing.T) {
	matches := []matcher.Match{
		{Check: catalog.Check{ID: "git:force_push", Severity: catalog.High}},
	}
	opts := filter.NewOptions(nil, []string{"git:force_push"})
	result := Decide(matches, opts)
	if !result.ShouldChallenge {
		t.Error("expected should_challenge=true")
	}
	if !result.ShouldDeny {
		t.Error("expected should_deny=true when a match id is in the deny list")
	}
}

func TestDecideNeverDenyWithoutChallenge(t *testing.T) {
	opts := filter.NewOptions(nil, []string{"anything"})
	result := Decide(nil, opts)
	if result.ShouldDeny {
		t.Error("should_deny must never be true when should_challenge is false")
	}
}

func TestHighestSeverityDefaultsToMedium(t *testing.T) {
	result := Result{}
	if got := HighestSeverity(result); got != catalog.Medium {
		t.Errorf("expected Medium default, got %q", got)
	}
}

func TestHighestSeverityPicksMax(t *testing.T) {
	result := Result{Matches: []MatchRecord{
		{Severity: catalog.Low},
		{Severity: catalog.Critical},
		{Severity: catalog.High},
	}}
	if got := HighestSeverity(result); got != catalog.Critical {
		t.Errorf("expected Critical, got %q", got)
	}
}
