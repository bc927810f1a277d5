package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/wayfarer/engine"
	"github.com/nathoo/wayfarer/types"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"hall", "Hall"},
		{"monster_slain", "Monster Slain"},
		{"item_taken", "Item Taken"},
		{"max_hp", "Max Hp"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, displayName(tt.id), tt.id)
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"Lying here: Dagger, Pipe.", kindYouSee},
		{"Monsters: Orc.", kindYouSee},
		{"Places to enter: Bag End.", kindYouSee},
		{"Exits: north, east.", kindExits},
		{"There are no exits.", kindExits},
		{"[trace] Moved", kindTrace},
		{"Strider says: Keep off the road.", kindDialogue},
		{"Rolling green hills.", kindRoomDesc},
		{"", kindRoomDesc},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyLine(tt.line), tt.line)
	}
}

func TestRender(t *testing.T) {
	assert.Contains(t, render(rawLine{text: "Lying here: Dagger, Pipe.", kind: kindYouSee}), "Dagger, Pipe.")
	assert.Contains(t, render(rawLine{text: "Goodbye.", kind: kindSystem}), "[Goodbye.]")
	assert.Contains(t, render(rawLine{text: "> north", kind: kindInput}), "> north")
}

func TestRefreshViewportWraps(t *testing.T) {
	m := New(make(chan string))
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 24})
	m, _ = send(t, m, eventMsg{ev: types.Event{Type: types.EventNarrate,
		Text: "The great hall stretches before you with its vaulted ceiling."}})

	var words []string
	for _, line := range strings.Split(m.viewport.View(), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
		words = append(words, strings.Fields(line)...)
	}
	assert.Equal(t, strings.Fields("The great hall stretches before you with its vaulted ceiling."), words)
}

func TestHistory_PushAndPrev(t *testing.T) {
	h := NewHistory(5)
	h.Push("describe")
	h.Push("north")
	h.Push("pick up")

	for _, want := range []string{"pick up", "north", "describe", "describe"} {
		prev, ok := h.Prev()
		require.True(t, ok)
		assert.Equal(t, want, prev)
	}
}

func TestHistory_Next(t *testing.T) {
	h := NewHistory(5)
	h.Push("describe")
	h.Push("north")

	h.Prev()
	h.Prev()

	next, ok := h.Next()
	assert.True(t, ok)
	assert.Equal(t, "north", next)

	_, ok = h.Next()
	assert.False(t, ok, "past newest entry")
}

func TestHistory_EmptyAndBounded(t *testing.T) {
	h := NewHistory(2)
	_, ok := h.Prev()
	assert.False(t, ok)
	_, ok = h.Next()
	assert.False(t, ok)

	h.Push("a")
	h.Push("b")
	h.Push("c")
	h.Push("c")
	assert.Equal(t, []string{"b", "c"}, h.Recent(5))
	assert.Equal(t, 2, h.Len())

	h.Prev()
	h.ResetCursor()
	prev, _ := h.Prev()
	assert.Equal(t, "c", prev)

	h.Push("")
	assert.Equal(t, []string{"c"}, h.Recent(1))
}

func newTestModel(t *testing.T) (Model, chan string) {
	t.Helper()
	lines := make(chan string, 4)
	m := New(lines)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model), lines
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func submit(t *testing.T, m Model, input string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(input)
	return send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModel_SubmitSendsLineToGame(t *testing.T) {
	m, lines := newTestModel(t)

	m, _ = submit(t, m, "  north  ")
	require.Len(t, lines, 1)
	assert.Equal(t, "north", <-lines)
	assert.Equal(t, "", m.input.Value())
	assert.Contains(t, m.viewport.View(), "> north")

	prev, ok := m.history.Prev()
	assert.True(t, ok)
	assert.Equal(t, "north", prev)
}

func TestModel_EmptyInputIgnored(t *testing.T) {
	m, lines := newTestModel(t)
	_, _ = submit(t, m, "   ")
	assert.Len(t, lines, 0)
}

func TestModel_BusyGameDoesNotBlock(t *testing.T) {
	lines := make(chan string) // nobody reading
	m := New(lines)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m, _ = submit(t, m, "north")
	assert.Contains(t, m.viewport.View(), "Still working")
}

func TestModel_RendersEvents(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, eventMsg{ev: types.Event{Type: types.EventNarrate, Text: "Rolling green hills."}})
	m, _ = send(t, m, eventMsg{ev: types.Event{Type: types.EventPrompt, Text: "What would you like to do?"}})
	m, _ = send(t, m, eventMsg{ev: types.Event{Type: types.EventDiagnostic, Text: "you can't go that way."}})
	m, _ = send(t, m, eventMsg{ev: types.Event{Type: types.EventItemTaken, Text: "You picked up Pipe."}})

	view := m.viewport.View()
	assert.Contains(t, view, "Rolling green hills.")
	assert.Contains(t, view, "What would you like to do?")
	assert.Contains(t, view, "you can't go that way.")
	assert.Contains(t, view, "You picked up Pipe.")

	kinds := make([]lineKind, len(m.transcript))
	for i, rl := range m.transcript {
		kinds[i] = rl.kind
	}
	assert.Equal(t, []lineKind{kindRoomDesc, kindPrompt, kindError, kindEvent}, kinds)
}

func TestModel_StatusBarFromStatusEvent(t *testing.T) {
	m, _ := newTestModel(t)
	assert.NotContains(t, m.renderStatusBar(), "HP")

	m, _ = send(t, m, eventMsg{ev: types.Event{Type: types.EventStatus, Data: map[string]any{
		"location": "The Shire", "hp": 8, "max_hp": 10, "level": 1, "xp": 0, "gold": "20.00", "turn": 3,
	}}})

	bar := m.renderStatusBar()
	assert.Contains(t, bar, "The Shire")
	assert.Contains(t, bar, "HP 8/10")
	assert.Contains(t, bar, "Gold 20.00")
	assert.Contains(t, bar, "T:3")
	assert.Empty(t, m.transcript, "status events are not narrated")
}

func TestModel_TraceShowsDomainEvents(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = submit(t, m, "/trace")
	require.True(t, m.trace)

	m, _ = send(t, m, eventMsg{ev: types.Event{Type: types.EventMoved, Text: "You travel east to Bree.",
		Data: map[string]any{"from": "shire", "to": "bree"}}})
	assert.Contains(t, m.viewport.View(), "[trace] Moved from=shire to=bree")
}

func TestHandleMeta(t *testing.T) {
	m := New(make(chan string))

	_, quit := m.handleMeta("/quit")
	assert.True(t, quit)
	_, quit = m.handleMeta("/exit")
	assert.True(t, quit)

	out, quit := m.handleMeta("/help")
	assert.False(t, quit)
	assert.Contains(t, strings.Join(out, "\n"), "/trace")

	out, _ = m.handleMeta("/bogus")
	assert.Contains(t, out[0], "Unknown command")

	out, _ = m.handleMeta("/state")
	assert.Equal(t, []string{"No state reported yet."}, out)

	m.status = map[string]any{"location": "Bree", "turn": 2}
	out, _ = m.handleMeta("/state")
	assert.Equal(t, []string{"Location: Bree", "Turn: 2"}, out)

	m.history.Push("north")
	m.history.Push("attack")
	out, _ = m.handleMeta("/history")
	assert.Equal(t, []string{" 1  north", " 2  attack"}, out)

	out, _ = m.handleMeta("/trace")
	assert.True(t, m.trace)
	assert.Contains(t, out[0], "enabled")
	out, _ = m.handleMeta("/trace")
	assert.False(t, m.trace)
	assert.Contains(t, out[0], "disabled")
}

func TestModel_QuitMeta(t *testing.T) {
	m, lines := newTestModel(t)
	m, cmd := submit(t, m, "/quit")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Equal(t, "", m.View())
	assert.Len(t, lines, 0)
}

func TestModel_GameOverThenEnterQuits(t *testing.T) {
	m, lines := newTestModel(t)
	m, _ = send(t, m, gameOverMsg{err: nil})
	assert.True(t, m.over)
	assert.Contains(t, m.viewport.View(), "The game has ended")

	m, cmd := submit(t, m, "north")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Len(t, lines, 0)
}

func TestModel_GameOverWithError(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, gameOverMsg{err: errors.New("boom")})
	assert.Contains(t, m.viewport.View(), "Game stopped: boom")

	m2, _ := newTestModel(t)
	m2, _ = send(t, m2, gameOverMsg{err: io.EOF})
	assert.NotContains(t, m2.viewport.View(), "Game stopped")
}

func TestHost_Next(t *testing.T) {
	h := NewHost(false)
	h.lines <- "north"

	line, err := h.Next(context.Background(), "What would you like to do?")
	require.NoError(t, err)
	assert.Equal(t, "north", line)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = h.Next(ctx, "?")
	assert.ErrorIs(t, err, context.Canceled)

	close(h.lines)
	_, err = h.Next(context.Background(), "?")
	assert.ErrorIs(t, err, io.EOF)
}

func TestHost_EmitBeforeRunIsDropped(t *testing.T) {
	h := NewHost(false)
	assert.NotPanics(t, func() { h.Emit(types.Event{Type: types.EventNarrate, Text: "hi"}) })
}

func TestRunGame_RecoversInvariantViolation(t *testing.T) {
	fault, err := runGame(context.Background(), func(context.Context) error {
		panic(&engine.InvariantViolation{Detail: "unhandled action"})
	})
	require.NotNil(t, fault)
	var iv *engine.InvariantViolation
	require.ErrorAs(t, err, &iv)

	m, _ := newTestModel(t)
	m, _ = send(t, m, gameOverMsg{err: err})
	assert.Contains(t, m.viewport.View(), "Game stopped: invariant violated: unhandled action")
}

func TestRunGame_NonErrorPanicAndNormalEnd(t *testing.T) {
	fault, err := runGame(context.Background(), func(context.Context) error { panic("boom") })
	assert.Equal(t, "boom", fault)
	assert.EqualError(t, err, "game panicked: boom")

	fault, err = runGame(context.Background(), func(context.Context) error { return io.EOF })
	assert.Nil(t, fault)
	assert.ErrorIs(t, err, io.EOF)
}
