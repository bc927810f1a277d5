// Package logger configures structured logging for a game session. Stdout
// belongs to the game, so logs go to a file or are discarded.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/nathoo/wayfarer/types"
)

// ServiceName is attached to every record.
const ServiceName = "wayfarer"

// Config represents logger configuration
type Config struct {
	Level   string // "debug", "info", "warn", "error"
	Format  string // "json", "text"
	Version string
}

// LogLevel converts string level to slog.Level
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == "json"
}

// NewSessionID creates a new UUID identifying one play session.
func NewSessionID() string {
	return uuid.NewString()
}

// New builds a logger writing to w, tagged with the service, version and a
// fresh session ID.
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	var h slog.Handler
	if cfg.IsJSON() {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With(
		slog.String("service", ServiceName),
		slog.String("version", cfg.Version),
		slog.String("session", NewSessionID()),
	)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Open creates the log file at path, or returns a discarding logger when path
// is empty. The returned close function is never nil.
func Open(cfg Config, path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return Discard(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return New(cfg, f), f.Close, nil
}

// EventHandler returns a narration subscriber that logs domain events.
// Diagnostics are logged at warn, prompts are skipped and everything else is
// logged at debug.
func EventHandler(l *slog.Logger) func(types.Event) {
	return func(ev types.Event) {
		switch ev.Type {
		case types.EventPrompt, types.EventNarrate:
			return
		case types.EventDiagnostic:
			l.Warn("rejected input", "text", ev.Text)
			return
		}
		args := make([]any, 0, 2+2*len(ev.Data))
		args = append(args, "event", ev.Type)
		for k, v := range ev.Data {
			args = append(args, k, v)
		}
		l.Debug("game event", args...)
	}
}
