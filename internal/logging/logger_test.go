package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"info", "info", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"trace", "trace", LevelTrace},
		{"uppercase TRACE", "TRACE", LevelTrace},
		{"padded debug", "  debug ", slog.LevelDebug},
		{"unknown defaults to info", "verbose", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		logAtTrace bool
		logAtDebug bool
	}{
		{"info filters debug", "info", false, false},
		{"debug passes debug", "debug", false, true},
		{"trace passes everything", "trace", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(tt.level, &buf)

			logger.Log(context.Background(), LevelTrace, "trace message")
			assert.Equal(t, tt.logAtTrace, strings.Contains(buf.String(), "trace message"))
			if tt.logAtTrace {
				assert.Contains(t, buf.String(), "level=TRACE")
			}

			buf.Reset()
			logger.Debug("debug message")
			assert.Equal(t, tt.logAtDebug, strings.Contains(buf.String(), "debug message"))

			buf.Reset()
			logger.Info("info message")
			assert.Contains(t, buf.String(), "info message")
		})
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestEventLogger_Disabled(t *testing.T) {
	el, err := NewEventLogger("")
	require.NoError(t, err)
	assert.Nil(t, el)

	// Nil logger should still be safe to use
	el.Log("rewire", map[string]any{"node": 1})
	assert.NoError(t, el.Close())
}

func TestEventLogger_WritesJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace", "events.jsonl")
	el, err := NewEventLogger(path)
	require.NoError(t, err)

	el.Log("rewire", map[string]any{"node": 3, "added": 7})
	el.Log("round", map[string]any{"round": 0})
	require.NoError(t, el.Close())

	// Writes after Close are dropped.
	el.Log("late", nil)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "rewire", first["kind"])
	assert.Contains(t, first, "time")
	event, ok := first["event"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(7), event["added"])
}

func TestEventLogger_CloseReportsFirstError(t *testing.T) {
	t.Run("encode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "events.jsonl")
		el, err := NewEventLogger(path)
		require.NoError(t, err)

		el.Log("rewire", map[string]any{"node": 1})
		el.Log("bad", make(chan int))
		el.Log("rewire", map[string]any{"node": 2})

		err = el.Close()
		var unsupported *json.UnsupportedTypeError
		require.ErrorAs(t, err, &unsupported)
		assert.Contains(t, err.Error(), "encoding bad event")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 2)
	})

	t.Run("write", func(t *testing.T) {
		el, err := NewEventLogger(filepath.Join(t.TempDir(), "events.jsonl"))
		require.NoError(t, err)

		// Pull the file out from under the logger so every write fails.
		require.NoError(t, el.file.Close())
		el.Log("rewire", map[string]any{"node": 1})
		el.Log("round", map[string]any{"round": 0})

		err = el.Close()
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrClosed))
		assert.Contains(t, err.Error(), "writing rewire event")
		assert.NoError(t, el.Close(), "second Close is a no-op")
	})
}
