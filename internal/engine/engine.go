// Package engine orchestrates the command splitter, matcher, filter and
// decision packages into the validate/approve pipeline callers see.
package engine

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cmdward/cmdward/internal/catalog"
	"github.com/cmdward/cmdward/internal/challenge"
	"github.com/cmdward/cmdward/internal/decision"
	"github.com/cmdward/cmdward/internal/filter"
	"github.com/cmdward/cmdward/internal/matcher"
	"github.com/cmdward/cmdward/internal/splitter"
)

// ErrKind tags the distinct, never-thrown-across-the-boundary error
// classes a caller must be able to switch on.
type ErrKind string

const (
	ErrEmptyCommand       ErrKind = "empty_command"
	ErrChallengeTimeout   ErrKind = "challenge_timeout"
	ErrChallengeTransport ErrKind = "challenge_transport_error"
	ErrExec               ErrKind = "exec_error"
)

// Error carries a tagged ErrKind alongside a human-readable message.
type Error struct {
	Kind    ErrKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind ErrKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Options is the validate/approve call's per-invocation configuration.
type Options struct {
	AllowedSeverities []catalog.Severity
	DenyPatternIDs    []string
}

func (o Options) toFilterOptions() filter.Options {
	return filter.NewOptions(o.AllowedSeverities, o.DenyPatternIDs)
}

// Engine ties a loaded Catalog to the validate/approve operations. It
// holds no per-call state and is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
}

// New builds an Engine around cat. Use catalog.MustLoad() to build cat at
// process start; a catalog load failure is fatal and must not reach here.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// Validate runs the splitter, matcher, filter and decision stages over
// command and returns the aggregate verdict.
func (e *Engine) Validate(command string, opts Options) (decision.Result, error) {
	if strings.TrimSpace(command) == "" {
		return decision.Result{}, newError(ErrEmptyCommand, "empty command")
	}

	parts := splitter.Split(command)
	raw := matcher.MatchAll(parts, e.catalog)
	kept := filter.Filter(raw, opts.toFilterOptions())
	result := decision.Decide(kept, opts.toFilterOptions())

	return result, nil
}

// ApproveResult is the outcome of the full approval pipeline.
type ApproveResult struct {
	Allowed   bool
	Reason    string
	SessionID string
}

// Approve runs Validate, then — if the verdict requires it — a challenge,
// and returns the final allow/deny decision. challengeType "block" never
// opens a challenge session: it denies immediately once a challenge was
// otherwise warranted.
func (e *Engine) Approve(ctx context.Context, command string, opts Options, challengeType challenge.Kind, timeout time.Duration) (ApproveResult, error) {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	result, err := e.Validate(command, opts)
	if err != nil {
		return ApproveResult{}, err
	}

	if !result.ShouldChallenge {
		return ApproveResult{Allowed: true}, nil
	}

	if result.ShouldDeny {
		return ApproveResult{
			Allowed: false,
			Reason:  "security policy violation",
		}, nil
	}

	if challengeType == challenge.KindBlock {
		return ApproveResult{Allowed: false, Reason: "blocked by policy"}, nil
	}

	res, err := challenge.Open(ctx, challenge.OpenParams{
		Kind:    challengeType,
		Command: command,
		Matches: result.Matches,
		Timeout: timeout,
	})
	if err != nil {
		return ApproveResult{}, newError(ErrChallengeTransport, "challenge system error")
	}

	if res.Approved {
		return ApproveResult{Allowed: true, SessionID: res.SessionID}, nil
	}

	reason := res.Reason
	if reason == "" {
		reason = "user denial"
	}
	if reason == "timeout" {
		return ApproveResult{Allowed: false, Reason: reason, SessionID: res.SessionID}, newError(ErrChallengeTimeout, "challenge timed out")
	}
	return ApproveResult{Allowed: false, Reason: reason, SessionID: res.SessionID}, nil
}

// AsError unwraps err into an *Error if it is one, for callers that want
// to switch on Kind without a type assertion at every call site.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
