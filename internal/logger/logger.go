// Package logger provides process-wide structured diagnostics (via
// zerolog) and a separate append-only audit trail of validate/approve
// decisions.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cmdward/cmdward/internal/redact"
)

// defaultMaxLogBytes is the file size at which the audit log is rotated
// (10 MB).
const defaultMaxLogBytes = 10 * 1024 * 1024

// Setup configures the global zerolog logger: human-readable console
// output when interactive (a real TTY), plain JSON lines otherwise — the
// shape a log aggregator or supervisor expects.
func Setup(debug bool, interactive bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var w io.Writer = os.Stderr
	if interactive {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	return logger
}

// AuditEvent records one validate/approve decision for the audit trail.
type AuditEvent struct {
	Timestamp       string   `json:"timestamp"`
	Command         string   `json:"command"`
	Decision        string   `json:"decision"`
	Flagged         bool     `json:"flagged,omitempty"`
	TriggeredRules  []string `json:"triggered_rules,omitempty"`
	Reasons         []string `json:"reasons,omitempty"`
	ChallengeType   string   `json:"challenge_type,omitempty"`
	ChallengeID     string   `json:"challenge_id,omitempty"`
	HighestSeverity string   `json:"highest_severity,omitempty"`
	Source          string   `json:"source,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// DisplayLabel returns a human-readable label for the event.
func (e AuditEvent) DisplayLabel() string {
	return e.Command
}

// AuditLogger appends JSON-lines audit events to a file, rotating it once
// it reaches defaultMaxLogBytes.
type AuditLogger struct {
	path string
	file *os.File
	mu   sync.Mutex
}

// New opens (creating if necessary) the audit log at path.
func New(path string) (*AuditLogger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	return &AuditLogger{path: path, file: file}, nil
}

// rotateIfNeeded rotates the log file if it has reached defaultMaxLogBytes.
// It renames the current file to <path>.1 (dropping any existing .1) and
// opens a fresh log file. Must be called with l.mu held.
func (l *AuditLogger) rotateIfNeeded() error {
	info, err := l.file.Stat()
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() < defaultMaxLogBytes {
		return nil
	}

	if err := l.file.Close(); err != nil {
		return fmt.Errorf("close log before rotation: %w", err)
	}

	rotated := l.path + ".1"
	_ = os.Remove(rotated)
	if err := os.Rename(l.path, rotated); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open fresh log after rotation: %w", err)
	}
	l.file = f
	return nil
}

// Log writes event as one JSON line, redacting the command and any error
// text first.
func (l *AuditLogger) Log(event AuditEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.rotateIfNeeded(); err != nil {
		fmt.Fprintf(os.Stderr, "cmdward: warning: audit log rotation failed: %v\n", err)
	}

	event.Command = redact.Redact(event.Command)
	if event.Error != "" {
		event.Error = redact.Redact(event.Error)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = l.file.Write(data)
	return err
}

func (l *AuditLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
