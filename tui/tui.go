package tui

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/nathoo/wayfarer/types"
)

// rawLine is one unstyled output line. Lines are kept unstyled so the whole
// transcript can be re-wrapped when the terminal is resized.
type rawLine struct {
	text string
	kind lineKind
}

// Model is the Bubble Tea model for the wayfarer TUI. It never touches game
// state directly: it renders events and hands submitted lines to the game.
type Model struct {
	lines chan<- string

	viewport viewport.Model
	input    textinput.Model
	history  *History

	transcript []rawLine
	status     map[string]any

	width    int
	height   int
	ready    bool
	trace    bool
	over     bool
	quitting bool
}

// eventMsg carries one engine event into the Update loop.
type eventMsg struct {
	ev types.Event
}

// gameOverMsg reports that the game goroutine has returned.
type gameOverMsg struct {
	err error
}

// New creates a TUI model that submits player input on lines.
func New(lines chan<- string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.CharLimit = 256
	ti.Focus()

	return Model{lines: lines, input: ti, history: NewHistory(100)}
}

// Init starts the cursor blinking; the game narrates its own intro.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes a message to its handler. Unhandled keys go to the input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	case eventMsg:
		return m.appendEvent(msg.ev), nil
	case gameOverMsg:
		return m.finish(msg.err), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// resize fits the viewport above the status bar and input line.
func (m Model) resize(width, height int) Model {
	m.width, m.height = width, height
	vpHeight := max(height-2, 1)

	if m.ready {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	} else {
		m.viewport = viewport.New(width, vpHeight)
		m.viewport.KeyMap = viewportKeyMap()
		m.ready = true
	}
	m.refreshViewport()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	vk := m.viewport.KeyMap
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit, true
	case msg.Type == tea.KeyEnter:
		next, cmd := m.submit()
		return next, cmd, true
	case msg.Type == tea.KeyUp:
		if prev, ok := m.history.Prev(); ok {
			m.input.SetValue(prev)
			m.input.CursorEnd()
		}
		return m, nil, true
	case msg.Type == tea.KeyDown:
		next, ok := m.history.Next()
		m.input.SetValue(next)
		if ok {
			m.input.CursorEnd()
		}
		return m, nil, true
	case m.ready && key.Matches(msg, vk.PageUp, vk.PageDown, vk.HalfPageUp, vk.HalfPageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd, true
	}
	return m, nil, false
}

// submit handles Enter: meta-commands run here, anything else goes to the
// game. When the game has ended, Enter leaves.
func (m Model) submit() (Model, tea.Cmd) {
	if m.over {
		m.quitting = true
		return m, tea.Quit
	}

	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return m, nil
	}
	m.history.Push(line)
	m.history.ResetCursor()
	m.transcript = append(m.transcript, rawLine{}, rawLine{text: "> " + line, kind: kindInput})

	if strings.HasPrefix(line, "/") {
		out, quit := m.handleMeta(line)
		m = m.appendSystem(out...)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	select {
	case m.lines <- line:
		m.refreshViewport()
	default:
		m = m.appendSystem("Still working on the last command; try again.")
	}
	return m, nil
}

// appendEvent adds an engine event to the transcript. Status events only
// update the status bar.
func (m Model) appendEvent(ev types.Event) Model {
	switch ev.Type {
	case types.EventStatus:
		m.status = ev.Data
	case types.EventPrompt:
		m.transcript = append(m.transcript, rawLine{text: ev.Text, kind: kindPrompt})
	case types.EventDiagnostic:
		m.transcript = append(m.transcript, rawLine{text: ev.Text, kind: kindError})
	case types.EventNarrate:
		m.transcript = append(m.transcript, rawLine{text: ev.Text, kind: classifyLine(ev.Text)})
	default:
		if ev.Text != "" {
			m.transcript = append(m.transcript, rawLine{text: ev.Text, kind: kindEvent})
		}
	}
	if m.trace && ev.Type != types.EventNarrate && ev.Type != types.EventPrompt {
		m.transcript = append(m.transcript, rawLine{text: formatTrace(ev), kind: kindTrace})
	}
	m.refreshViewport()
	return m
}

func (m Model) finish(err error) Model {
	m.over = true
	if err != nil && !errors.Is(err, io.EOF) {
		m = m.appendSystem(fmt.Sprintf("Game stopped: %v", err))
	}
	return m.appendSystem("The game has ended. Press Enter to leave.")
}

func (m Model) appendSystem(lines ...string) Model {
	for _, line := range lines {
		m.transcript = append(m.transcript, rawLine{text: line, kind: kindSystem})
	}
	m.refreshViewport()
	return m
}

// refreshViewport restyles and re-wraps the transcript at the current width.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	width := max(m.width, 10)

	out := make([]string, len(m.transcript))
	for i, rl := range m.transcript {
		if rl.text != "" {
			out[i] = ansi.Wrap(render(rl), width, "")
		}
	}
	m.viewport.SetContent(strings.Join(out, "\n"))
	m.viewport.GotoBottom()
}

// View lays out the transcript, the status bar and the input line.
func (m Model) View() string {
	switch {
	case m.quitting:
		return ""
	case !m.ready:
		return "Loading..."
	}
	return strings.Join([]string{m.viewport.View(), m.renderStatusBar(), m.input.View()}, "\n")
}

var metaCommands = []struct{ name, help string }{
	{"/quit", "Exit game"},
	{"/help", "Show this help"},
	{"/state", "Show the last reported player state"},
	{"/trace", "Toggle event trace output"},
	{"/history", "Show recent input"},
}

// handleMeta runs a host command. It returns the lines to show and whether
// to quit.
func (m *Model) handleMeta(line string) ([]string, bool) {
	name := strings.Fields(line)[0]

	switch name {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true
	case "/help":
		return metaHelp(), false
	case "/state":
		return m.stateLines(), false
	case "/trace":
		m.trace = !m.trace
		if m.trace {
			return []string{"Trace output enabled."}, false
		}
		return []string{"Trace output disabled."}, false
	case "/history":
		recent := m.history.Recent(10)
		out := make([]string, len(recent))
		for i, r := range recent {
			out[i] = fmt.Sprintf("%2d  %s", i+1, r)
		}
		return out, false
	}
	return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", name)}, false
}

func metaHelp() []string {
	out := []string{"System:"}
	for _, c := range metaCommands {
		out = append(out, fmt.Sprintf("  %-9s %s", c.name, c.help))
	}
	return append(out, "",
		"Type 'help' for the game's own commands.",
		"PgUp/PgDn scroll, Up/Down recall earlier input.")
}

func (m *Model) stateLines() []string {
	if m.status == nil {
		return []string{"No state reported yet."}
	}
	out := make([]string, 0, len(m.status))
	for _, k := range sortedKeys(m.status) {
		out = append(out, fmt.Sprintf("%s: %v", displayName(k), m.status[k]))
	}
	return out
}

// formatTrace renders "[trace] Moved from=shire to=bree".
func formatTrace(ev types.Event) string {
	var b strings.Builder
	b.WriteString("[trace] ")
	b.WriteString(displayName(ev.Type))
	for _, k := range sortedKeys(ev.Data) {
		fmt.Fprintf(&b, " %s=%v", k, ev.Data[k])
	}
	return b.String()
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// viewportKeyMap leaves Up and Down to input history.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
