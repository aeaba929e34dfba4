package engine

import (
	"context"
	"testing"
	"time"

	"github.com/cmdward/cmdward/internal/catalog"
	"github.com/cmdward/cmdward/internal/challenge"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(catalog.MustLoad())
}

func TestValidateSafeCommand(t *testing.T) {
	e := newTestEngine(t)
	result, err := e.Validate("echo hello", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ShouldChallenge || result.ShouldDeny {
		t.Errorf("expected allow for safe command, got %+v", result)
	}
	if len(result.Matches) != 0 {
		t.Errorf("expected no matches, got %+v", result.Matches)
	}
}

func TestValidateCriticalCommand(t *testing.T) {
	e := newTestEngine(t)
	result, err := e.Validate("rm -rf /", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.ShouldChallenge {
		t.Fatal("expected should_challenge=true for rm -rf /")
	}
	var foundCritical bool
	for _, m := range result.Matches {
		if m.Severity == catalog.Critical {
			foundCritical = true
		}
	}
	if !foundCritical {
		t.Errorf("expected a critical match, got %+v", result.Matches)
	}
}

func TestValidateCompoundCommand(t *testing.T) {
	e := newTestEngine(t)
	result, err := e.Validate("echo ok && rm -rf /", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.ShouldChallenge {
		t.Error("expected should_challenge=true for the destructive half of a compound command")
	}
}

func TestValidateDenyByID(t *testing.T) {
	e := newTestEngine(t)
	result, err := e.Validate("git push --force", Options{
		DenyPatternIDs: []string{"git:force_push"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.ShouldChallenge || !result.ShouldDeny {
		t.Errorf("expected challenge+deny, got %+v", result)
	}
}

func TestValidateSeverityFilterDropsLow(t *testing.T) {
	e := newTestEngine(t)
	result, err := e.Validate("git add .", Options{
		AllowedSeverities: []catalog.Severity{catalog.Critical, catalog.High},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ShouldChallenge {
		t.Errorf("expected low-severity match filtered out, got %+v", result)
	}
}

func TestValidateEmptyCommand(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Validate("   ", Options{})
	if err == nil {
		t.Fatal("expected an error for an empty command")
	}
	gotErr, ok := AsError(err)
	if !ok || gotErr.Kind != ErrEmptyCommand {
		t.Errorf("expected ErrEmptyCommand, got %v", err)
	}
}

func TestApproveSafeCommandAllowsWithoutChallenge(t *testing.T) {
	e := newTestEngine(t)
	res, err := e.Approve(context.Background(), "echo hello", Options{}, challenge.KindConfirm, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Allowed {
		t.Errorf("expected allowed=true, got %+v", res)
	}
}

func TestApproveDenyByIDSkipsChallenge(t *testing.T) {
	e := newTestEngine(t)
	res, err := e.Approve(context.Background(), "git push --force", Options{
		DenyPatternIDs: []string{"git:force_push"},
	}, challenge.KindConfirm, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Allowed {
		t.Error("expected denial")
	}
	if res.Reason != "security policy violation" {
		t.Errorf("expected security policy violation reason, got %q", res.Reason)
	}
}

func TestApproveBlockTypeDeniesWithoutChallenge(t *testing.T) {
	e := newTestEngine(t)
	res, err := e.Approve(context.Background(), "rm -rf /", Options{}, challenge.KindBlock, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Allowed {
		t.Error("expected block challenge type to deny")
	}
	if res.Reason != "blocked by policy" {
		t.Errorf("expected blocked by policy reason, got %q", res.Reason)
	}
}

func TestApproveTimeoutDenies(t *testing.T) {
	e := newTestEngine(t)
	res, err := e.Approve(context.Background(), "rm -rf /", Options{}, challenge.KindConfirm, 50*time.Millisecond)
	if res.Allowed {
		t.Error("expected denial on timeout")
	}
	if res.Reason != "timeout" {
		t.Errorf("expected reason=timeout, got %q", res.Reason)
	}
	gotErr, ok := AsError(err)
	if !ok || gotErr.Kind != ErrChallengeTimeout {
		t.Errorf("expected ErrChallengeTimeout, got %v", err)
	}
}
