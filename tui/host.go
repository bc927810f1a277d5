package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/wayfarer/engine"
	"github.com/nathoo/wayfarer/types"
)

// Host connects a game running on its own goroutine to the Bubble Tea
// program. It is the game's input Source and one of its Sinks.
type Host struct {
	lines   chan string
	program *tea.Program
	trace   bool
}

// NewHost creates a host. Pass it as prompt.IO.In and subscribe its Emit to
// the event bus before calling Run.
func NewHost(trace bool) *Host {
	return &Host{lines: make(chan string, 16), trace: trace}
}

// Next blocks until the player submits a line or ctx is done.
func (h *Host) Next(ctx context.Context, _ string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-h.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

// Emit forwards ev to the UI. Events emitted before Run are dropped.
func (h *Host) Emit(ev types.Event) {
	if h.program != nil {
		h.program.Send(eventMsg{ev: ev})
	}
}

// Run shows the UI and plays g until the player quits the game and dismisses
// the screen, or leaves with ctrl+c or /quit.
func (h *Host) Run(ctx context.Context, g *engine.Game) error {
	gctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := New(h.lines)
	m.trace = h.trace
	h.program = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	done := make(chan gameResult, 1)
	go func() {
		fault, err := runGame(gctx, g.Run)
		h.program.Send(gameOverMsg{err: err})
		done <- gameResult{err: err, fault: fault}
	}()

	_, uiErr := h.program.Run()
	cancel()
	res := <-done
	if res.fault != nil {
		// The screen is restored by now, so the panic is readable.
		panic(res.fault)
	}
	gameErr := res.err

	if uiErr != nil && !errors.Is(uiErr, tea.ErrProgramKilled) {
		return uiErr
	}
	if gameErr == nil || errors.Is(gameErr, io.EOF) || errors.Is(gameErr, context.Canceled) {
		return nil
	}
	return gameErr
}

type gameResult struct {
	err   error
	fault any
}

// runGame calls run and recovers a panic into fault. err then describes the
// panic so the screen can show it before the program exits.
func runGame(ctx context.Context, run func(context.Context) error) (fault any, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		fault = r
		if e, ok := r.(error); ok {
			err = e
		} else {
			err = fmt.Errorf("game panicked: %v", r)
		}
	}()
	return nil, run(ctx)
}
