// Package prompt is the boundary between the engine and its host. The engine
// never reads a console: it asks a Source for the next input token and emits
// events to a Sink.
package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/nathoo/wayfarer/types"
)

// Source supplies input tokens. Next blocks until a line is available.
type Source interface {
	Next(ctx context.Context, question string) (string, error)
}

// Sink receives narration and domain events.
type Sink interface {
	Emit(ev types.Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(types.Event)

// Emit calls f(ev).
func (f SinkFunc) Emit(ev types.Event) { f(ev) }

// IO bundles a Source and Sink with narration helpers.
type IO struct {
	In  Source
	Out Sink
}

// Ask emits the question as a prompt event and returns the next token with
// surrounding whitespace removed.
func (io IO) Ask(ctx context.Context, question string) (string, error) {
	io.Out.Emit(types.Event{Type: types.EventPrompt, Text: question})
	line, err := io.In.Next(ctx, question)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Say emits each line as narration.
func (io IO) Say(lines ...string) {
	for _, l := range lines {
		io.Out.Emit(types.Event{Type: types.EventNarrate, Text: l})
	}
}

// Sayf emits formatted narration.
func (io IO) Sayf(format string, args ...any) {
	io.Say(fmt.Sprintf(format, args...))
}

// Fail emits a recoverable diagnostic.
func (io IO) Fail(format string, args ...any) {
	io.Out.Emit(types.Event{Type: types.EventDiagnostic, Text: fmt.Sprintf(format, args...)})
}

// Event emits a domain event with narration text and data.
func (io IO) Event(typ, text string, data map[string]any) {
	io.Out.Emit(types.Event{Type: typ, Text: text, Data: data})
}
