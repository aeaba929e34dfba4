// Package challenge runs an ephemeral local HTTP listener that renders a
// short interactive verification (math, word, confirm, or an
// unconditional block page) and resolves to an approve/deny verdict.
package challenge

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"time"

	"github.com/cmdward/cmdward/internal/decision"
)

// Kind identifies which challenge the controller should render.
type Kind string

const (
	KindConfirm Kind = "confirm"
	KindMath    Kind = "math"
	KindWord    Kind = "word"
	KindBlock   Kind = "block"
)

// Result is the terminal outcome of a challenge session.
type Result struct {
	Approved  bool
	Kind      Kind
	Reason    string
	SessionID string
}

// OpenParams describes the challenge to render and the context to embed
// in it.
type OpenParams struct {
	Kind            Kind
	Command         string
	Matches         []decision.MatchRecord
	Timeout         time.Duration
	SuppressBrowser bool

	// OnReady, if set, is called once with the session's base URL and
	// access token right after the listener is bound and before Open
	// blocks waiting for a verdict. Tests use it to drive the session's
	// HTTP endpoints.
	OnReady func(baseURL, token string)
}

// challengeState holds the server-picked answer for math/word challenges.
type challengeState struct {
	operand1   int
	operand2   int
	targetWord string
}

func newChallengeState(kind Kind) (challengeState, error) {
	var ch challengeState
	switch kind {
	case KindMath:
		a, err := randIntn(11)
		if err != nil {
			return ch, err
		}
		b, err := randIntn(11)
		if err != nil {
			return ch, err
		}
		ch.operand1, ch.operand2 = a, b
	case KindWord:
		n, err := randIntn(len(wordList))
		if err != nil {
			return ch, err
		}
		ch.targetWord = pickWord(n)
	}
	return ch, nil
}

func randIntn(n int) (int, error) {
	max := big.NewInt(int64(n))
	v, err := rand.Int(rand.Reader, max)
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// Open binds an OS-assigned port on 127.0.0.1, serves the challenge page,
// and blocks until the session resolves via /approve, /deny, the timeout,
// or ctx being cancelled. It always releases the port before returning.
func Open(ctx context.Context, params OpenParams) (Result, error) {
	ch, err := newChallengeState(params.Kind)
	if err != nil {
		return Result{}, fmt.Errorf("challenge: generate state: %w", err)
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return Result{}, fmt.Errorf("challenge: listen: %w", err)
	}

	sess := newSession(params, ch, listener)
	defer sess.close()

	if err := sess.start(); err != nil {
		return Result{}, fmt.Errorf("challenge: start: %w", err)
	}

	baseURL := fmt.Sprintf("http://%s", listener.Addr().String())

	if !params.SuppressBrowser {
		openBrowser(fmt.Sprintf("%s/?token=%s", baseURL, sess.token))
	}
	if params.OnReady != nil {
		params.OnReady(baseURL, sess.token)
	}

	timer := time.AfterFunc(params.Timeout, func() {
		sess.resolver.resolve(Result{Approved: false, Kind: params.Kind, Reason: "timeout"})
	})
	defer timer.Stop()

	go func() {
		select {
		case <-ctx.Done():
			sess.resolver.resolve(Result{Approved: false, Kind: params.Kind, Reason: "cancelled"})
		case <-sess.done:
		}
	}()

	result := sess.resolver.wait()
	result.SessionID = sess.token
	close(sess.done)
	return result, nil
}

// session ties together the listener, http.Server, socket tracker and
// resolver for one challenge's lifetime.
type session struct {
	params   OpenParams
	state    challengeState
	token    string
	listener net.Listener
	server   *http.Server
	sockets  *socketTracker
	resolver *resolver
	done     chan struct{}
}

func newSession(params OpenParams, ch challengeState, listener net.Listener) *session {
	sess := &session{
		params:   params,
		state:    ch,
		token:    newSessionToken(),
		listener: listener,
		sockets:  newSocketTracker(),
		resolver: newResolver(),
		done:     make(chan struct{}),
	}

	mux := http.NewServeMux()
	registerRoutes(mux, sess)

	sess.server = &http.Server{
		Handler:           withCORS(mux),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       0,
		ConnState: func(conn net.Conn, state http.ConnState) {
			switch state {
			case http.StateNew:
				sess.sockets.track(conn)
			case http.StateClosed, http.StateHijacked:
				sess.sockets.untrack(conn)
			}
		},
	}
	sess.server.SetKeepAlivesEnabled(false)

	return sess
}

func (s *session) start() error {
	go func() {
		_ = s.server.Serve(s.listener)
	}()
	s.resolver.setServing()
	return nil
}

// close tears the session down: stop accepting, destroy tracked sockets,
// release the port. Safe to call once via defer in Open.
func (s *session) close() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = s.server.Shutdown(ctx)
	s.sockets.closeAll()
	_ = s.listener.Close()
	s.resolver.state.Store(int32(stateClosed))
}
