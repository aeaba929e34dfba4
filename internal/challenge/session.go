package challenge

import (
	"net"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// state is the session's position in the IDLE -> SERVING -> RESOLVED ->
// CLOSED lifecycle. Tracked only for status(); nothing currently branches
// on it, but it gives a log line or future /status endpoint a single
// source of truth instead of re-deriving it from resolver/listener state.
type state int32

const (
	stateIdle state = iota
	stateServing
	stateResolved
	stateClosed
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateServing:
		return "serving"
	case stateResolved:
		return "resolved"
	case stateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// newSessionToken generates the per-session secret that every /approve,
// /deny, and page request must present. The challenge server binds to
// 127.0.0.1 but that port is reachable by any other local process or
// browser tab; the token keeps a session resolvable only by whoever was
// handed the URL this process opened.
func newSessionToken() string {
	return uuid.NewString()
}

// resolver is a one-shot sink: the first caller to call resolve wins, all
// later calls are no-ops. This replaces a polled, shared mutable slot with
// a single channel of capacity 1, eliminating the class of bug where a
// deadline fires after the result is already known.
type resolver struct {
	once  sync.Once
	ch    chan Result
	state atomic.Int32
}

func newResolver() *resolver {
	r := &resolver{ch: make(chan Result, 1)}
	r.state.Store(int32(stateIdle))
	return r
}

// resolve delivers result to the sink exactly once. Subsequent calls are
// ignored, matching the "first of approve|deny|timeout wins" rule.
func (r *resolver) resolve(result Result) {
	r.once.Do(func() {
		r.state.Store(int32(stateResolved))
		r.ch <- result
	})
}

// wait blocks until resolve is called and returns its value.
func (r *resolver) wait() Result {
	return <-r.ch
}

// setServing marks the session as actively accepting requests. Called once
// the listener is bound and the HTTP server goroutine has started.
func (r *resolver) setServing() {
	r.state.CompareAndSwap(int32(stateIdle), int32(stateServing))
}

// status reports the session's current lifecycle state.
func (r *resolver) status() state {
	return state(r.state.Load())
}

// socketTracker records live connections so shutdown can force-close
// them instead of waiting out keep-alive.
type socketTracker struct {
	mu      sync.Mutex
	sockets map[net.Conn]struct{}
}

func newSocketTracker() *socketTracker {
	return &socketTracker{sockets: make(map[net.Conn]struct{})}
}

func (t *socketTracker) track(conn net.Conn) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sockets[conn] = struct{}{}
}

func (t *socketTracker) untrack(conn net.Conn) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sockets, conn)
}

// closeAll forcibly closes every tracked connection. Safe to call more
// than once.
func (t *socketTracker) closeAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for conn := range t.sockets {
		_ = conn.Close()
		delete(t.sockets, conn)
	}
}
