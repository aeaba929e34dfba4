package challenge

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cmdward/cmdward/internal/decision"
)

type readySession struct {
	baseURL string
	token   string
}

func (s readySession) get(path string) (*http.Response, error) {
	return http.Get(s.baseURL + path + s.tokenQuery(path))
}

func (s readySession) post(path string) (*http.Response, error) {
	return http.Post(s.baseURL+path+s.tokenQuery(path), "application/json", nil)
}

func (s readySession) tokenQuery(path string) string {
	if strings.Contains(path, "?") {
		return "&token=" + s.token
	}
	return "?token=" + s.token
}

func openForTest(t *testing.T, params OpenParams) (Result, error) {
	t.Helper()
	ready := make(chan readySession, 1)
	params.SuppressBrowser = true
	if params.Timeout == 0 {
		params.Timeout = time.Second
	}
	params.OnReady = func(baseURL, token string) { ready <- readySession{baseURL, token} }

	resultCh := make(chan Result, 1)
	errCh := make(chan error, 1)
	go func() {
		res, err := Open(context.Background(), params)
		resultCh <- res
		errCh <- err
	}()

	<-ready
	return <-resultCh, <-errCh
}

func TestOpenConfirmApprove(t *testing.T) {
	ready := make(chan readySession, 1)
	resultCh := make(chan Result, 1)
	errCh := make(chan error, 1)

	go func() {
		res, err := Open(context.Background(), OpenParams{
			Kind:            KindConfirm,
			Command:         "rm -rf /",
			Timeout:         time.Second,
			SuppressBrowser: true,
			OnReady:         func(u, tok string) { ready <- readySession{u, tok} },
		})
		resultCh <- res
		errCh <- err
	}()

	sess := <-ready

	resp, err := sess.get("/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "rm -rf /") {
		t.Errorf("expected page to embed the command, got: %s", body)
	}

	resp2, err := sess.post("/approve")
	if err != nil {
		t.Fatalf("POST /approve: %v", err)
	}
	resp2.Body.Close()

	res := <-resultCh
	if err := <-errCh; err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if !res.Approved {
		t.Errorf("expected approved=true, got %+v", res)
	}
}

func TestOpenConfirmDeny(t *testing.T) {
	ready := make(chan readySession, 1)
	resultCh := make(chan Result, 1)

	go func() {
		res, _ := Open(context.Background(), OpenParams{
			Kind:            KindConfirm,
			Command:         "echo hi",
			Timeout:         time.Second,
			SuppressBrowser: true,
			OnReady:         func(u, tok string) { ready <- readySession{u, tok} },
		})
		resultCh <- res
	}()

	sess := <-ready
	resp, err := sess.get("/deny")
	if err != nil {
		t.Fatalf("GET /deny: %v", err)
	}
	resp.Body.Close()

	res := <-resultCh
	if res.Approved {
		t.Errorf("expected approved=false, got %+v", res)
	}
}

func TestOpenApproveRejectsWrongToken(t *testing.T) {
	ready := make(chan readySession, 1)
	resultCh := make(chan Result, 1)

	go func() {
		res, _ := Open(context.Background(), OpenParams{
			Kind:            KindConfirm,
			Command:         "echo hi",
			Timeout:         200 * time.Millisecond,
			SuppressBrowser: true,
			OnReady:         func(u, tok string) { ready <- readySession{u, tok} },
		})
		resultCh <- res
	}()

	sess := <-ready
	resp, err := http.Post(sess.baseURL+"/approve?token=wrong", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /approve: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for wrong token, got %d", resp.StatusCode)
	}

	res := <-resultCh
	if res.Approved {
		t.Error("expected a forged request with the wrong token to never approve the session")
	}
	if res.Reason != "timeout" {
		t.Errorf("expected the session to still time out, got reason %q", res.Reason)
	}
}

func TestOpenTimeoutDenies(t *testing.T) {
	start := time.Now()
	res, err := openForTest(t, OpenParams{
		Kind:    KindConfirm,
		Command: "echo hi",
		Timeout: 50 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if res.Approved {
		t.Error("expected timeout to deny")
	}
	if res.Reason != "timeout" {
		t.Errorf("expected reason=timeout, got %q", res.Reason)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("timeout took too long: %v", elapsed)
	}
}

func TestOpenEscapesCommandInPage(t *testing.T) {
	ready := make(chan readySession, 1)
	resultCh := make(chan Result, 1)

	go func() {
		res, _ := Open(context.Background(), OpenParams{
			Kind:            KindConfirm,
			Command:         `echo "<script>alert(1)</script>"`,
			Matches:         []decision.MatchRecord{{ID: "x:y", Description: "a & b <c>"}},
			Timeout:         time.Second,
			SuppressBrowser: true,
			OnReady:         func(u, tok string) { ready <- readySession{u, tok} },
		})
		resultCh <- res
	}()

	sess := <-ready
	resp, _ := sess.get("/")
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if strings.Contains(string(body), "<script>alert(1)</script>") {
		t.Errorf("expected command to be HTML-escaped, got raw script tag: %s", body)
	}
	if !strings.Contains(string(body), "&lt;script&gt;") {
		t.Errorf("expected escaped entities in rendered page")
	}

	sess.post("/deny")
	<-resultCh
}

func TestOpenMathChallengeEmbedsOperands(t *testing.T) {
	ready := make(chan readySession, 1)
	resultCh := make(chan Result, 1)

	go func() {
		res, _ := Open(context.Background(), OpenParams{
			Kind:            KindMath,
			Command:         "rm -rf /",
			Timeout:         time.Second,
			SuppressBrowser: true,
			OnReady:         func(u, tok string) { ready <- readySession{u, tok} },
		})
		resultCh <- res
	}()

	sess := <-ready
	resp, _ := sess.get("/")
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if !strings.Contains(string(body), "var expected =") {
		t.Errorf("expected math answer to be embedded as a JS literal, got: %s", body)
	}

	sess.post("/deny")
	<-resultCh
}

func TestOpenWordChallengeEmbedsTarget(t *testing.T) {
	ready := make(chan readySession, 1)
	resultCh := make(chan Result, 1)

	go func() {
		res, _ := Open(context.Background(), OpenParams{
			Kind:            KindWord,
			Command:         "git push --force",
			Timeout:         time.Second,
			SuppressBrowser: true,
			OnReady:         func(u, tok string) { ready <- readySession{u, tok} },
		})
		resultCh <- res
	}()

	sess := <-ready
	resp, _ := sess.get("/")
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if !strings.Contains(string(body), "var target =") {
		t.Errorf("expected target word to be embedded as a JS literal, got: %s", body)
	}

	sess.post("/approve")
	res := <-resultCh
	if !res.Approved {
		t.Errorf("expected approved=true after /approve, got %+v", res)
	}
}

func TestSessionReleasesPortAfterResolution(t *testing.T) {
	ready := make(chan readySession, 1)
	resultCh := make(chan Result, 1)

	go func() {
		res, _ := Open(context.Background(), OpenParams{
			Kind:            KindConfirm,
			Command:         "echo hi",
			Timeout:         time.Second,
			SuppressBrowser: true,
			OnReady:         func(u, tok string) { ready <- readySession{u, tok} },
		})
		resultCh <- res
	}()

	sess := <-ready
	sess.post("/approve")
	<-resultCh

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		_, err := http.Get(sess.baseURL + "/")
		if err != nil {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("expected port to be released within 1s of resolution")
}
