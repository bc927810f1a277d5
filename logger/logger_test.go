package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/wayfarer/types"
)

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Config{Level: tt.level}.LogLevel(), tt.level)
	}
}

func TestNew_JSONCarriesSession(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: "json", Version: "test"}, &buf)
	l.Info("started")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "started", rec["msg"])
	assert.Equal(t, ServiceName, rec["service"])
	assert.Equal(t, "test", rec["version"])
	_, err := uuid.Parse(rec["session"].(string))
	assert.NoError(t, err)
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn"}, &buf)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestEventHandler(t *testing.T) {
	var buf bytes.Buffer
	h := EventHandler(New(Config{Level: "debug"}, &buf))

	h(types.Event{Type: types.EventPrompt, Text: "What would you like to do?"})
	h(types.Event{Type: types.EventNarrate, Text: "Rolling hills."})
	assert.Empty(t, buf.String())

	h(types.Event{Type: types.EventSlain, Text: "The Orc is defeated!", Data: map[string]any{"monster": "Orc"}})
	h(types.Event{Type: types.EventDiagnostic, Text: "you can't go that way"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "event=monster_slain")
	assert.Contains(t, lines[0], "monster=Orc")
	assert.Contains(t, lines[1], "level=WARN")
}

func TestOpen(t *testing.T) {
	l, closeFn, err := Open(Config{}, "")
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	l.Info("dropped")
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "wayfarer.log")
	l, closeFn, err = Open(Config{Level: "info"}, path)
	require.NoError(t, err)
	l.Info("written")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")
}
