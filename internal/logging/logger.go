// Package logging provides leveled logging and event tracing for opinet.
// It offers two complementary outputs:
//   - A leveled slog.Logger for stderr (operational output)
//   - An EventLogger for structured JSONL traces of engine events (rewiring)
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LevelTrace is a custom slog level below Debug for per-interaction detail.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "info", "debug", "trace" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "trace":
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a leveled slog.Logger writing text records to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Label the custom trace level
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 4}))
}

// EventLogger writes structured events to a JSONL file, one object per line.
// It is safe for concurrent use. A nil EventLogger is safe to use;
// all methods are no-ops on nil receiver.
//
// Log never fails; the first encode or write error is kept and reported by
// Close, so callers learn that the trace is incomplete.
type EventLogger struct {
	mu   sync.Mutex
	file *os.File
	err  error // first failed Log
}

// NewEventLogger opens (append mode) the JSONL file at path, creating its
// parent directory. An empty path disables tracing and returns nil.
func NewEventLogger(path string) (*EventLogger, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	return &EventLogger{file: f}, nil
}

// Log writes an event as a single JSONL line under the given kind.
// "time" and "kind" fields are added automatically; payload is stored
// under "event". Safe to call on nil receiver.
func (el *EventLogger) Log(kind string, payload any) {
	if el == nil {
		return
	}

	entry := map[string]any{
		"time":  time.Now().UTC().Format(time.RFC3339Nano),
		"kind":  kind,
		"event": payload,
	}
	data, err := json.Marshal(entry)

	el.mu.Lock()
	defer el.mu.Unlock()
	if el.file == nil {
		return
	}
	if err != nil {
		el.fail(fmt.Errorf("encoding %s event: %w", kind, err))
		return
	}
	if _, err := el.file.Write(append(data, '\n')); err != nil {
		el.fail(fmt.Errorf("writing %s event: %w", kind, err))
	}
}

// fail records err unless an earlier error is already kept. Caller holds mu.
func (el *EventLogger) fail(err error) {
	if el.err == nil {
		el.err = err
	}
}

// Close closes the underlying file and returns the first error seen by Log,
// or else the close error. Safe to call on nil receiver.
func (el *EventLogger) Close() error {
	if el == nil {
		return nil
	}

	el.mu.Lock()
	defer el.mu.Unlock()
	if el.file == nil {
		return nil
	}
	err := el.file.Close()
	el.file = nil
	if el.err != nil {
		return el.err
	}

	return err
}
