package prompt

import (
	"context"
	"io"
	"strings"

	"github.com/nathoo/wayfarer/types"
)

// Script is a Source that replays a fixed list of lines, then reports io.EOF.
type Script struct {
	lines []string
	pos   int
	Asked []string // questions received, in order
}

// Lines returns a Script replaying the given lines.
func Lines(lines ...string) *Script {
	return &Script{lines: lines}
}

// Next returns the next scripted line.
func (s *Script) Next(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.Asked = append(s.Asked, question)
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// Remaining returns the number of unread lines.
func (s *Script) Remaining() int {
	return len(s.lines) - s.pos
}

// Recorder is a Sink that keeps every event it receives.
type Recorder struct {
	Events []types.Event
}

// Emit records ev.
func (r *Recorder) Emit(ev types.Event) {
	r.Events = append(r.Events, ev)
}

// Texts returns the text of every recorded event except prompts.
func (r *Recorder) Texts() []string {
	var out []string
	for _, ev := range r.Events {
		if ev.Type == types.EventPrompt {
			continue
		}
		out = append(out, ev.Text)
	}
	return out
}

// Contains reports whether any recorded non-prompt text contains substr.
func (r *Recorder) Contains(substr string) bool {
	for _, t := range r.Texts() {
		if strings.Contains(t, substr) {
			return true
		}
	}
	return false
}

// OfType returns the recorded events with the given type.
func (r *Recorder) OfType(typ string) []types.Event {
	var out []types.Event
	for _, ev := range r.Events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}
