// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the wayfarer engine.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/nathoo/wayfarer/engine"
	"github.com/nathoo/wayfarer/engine/parser"
	"github.com/nathoo/wayfarer/types"
)

// ErrQuit is returned by Next after the /quit meta-command.
var ErrQuit = errors.New("quit requested")

// CLI is both the input Source and the output Sink of a game played in a
// plain terminal.
type CLI struct {
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool // echo each input line after the prompt (for script playback)

	input  chan readResult
	status map[string]any // last status event, for /state
}

type readResult struct {
	line string
	err  error
}

// New creates a CLI on stdin and stdout.
func New() *CLI {
	return &CLI{In: os.Stdin, Out: os.Stdout}
}

// Run plays g until the player quits or input runs out.
func (c *CLI) Run(ctx context.Context, g *engine.Game) error {
	err := g.Run(ctx)
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Next reads lines until one is meant for the game. Meta-commands and, in
// script playback, comment lines are consumed here. A cancelled ctx returns
// at once even while a read is pending.
func (c *CLI) Next(ctx context.Context, _ string) (string, error) {
	if c.input == nil {
		c.input = make(chan readResult)
		go c.read()
	}
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if !c.EchoInput {
			c.print("> ")
		}
		var r readResult
		select {
		case <-ctx.Done():
			c.printLine("")
			return "", ctx.Err()
		case res, ok := <-c.input:
			r = res
			if !ok {
				r.err = io.EOF
			}
		}
		if errors.Is(r.err, io.EOF) {
			c.printLine("")
			return "", io.EOF
		}
		if r.err != nil {
			return "", fmt.Errorf("reading input: %w", r.err)
		}

		line := r.line
		if c.EchoInput {
			if parser.IsComment(line) {
				continue
			}
			c.printLine("> " + line)
		}

		input := strings.TrimSpace(line)
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return "", ErrQuit
			}
			continue
		}
		return input, nil
	}
}

// read scans In on its own goroutine, one line per receive.
func (c *CLI) read() {
	defer close(c.input)
	scanner := bufio.NewScanner(c.In)
	for scanner.Scan() {
		c.input <- readResult{line: scanner.Text()}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	c.input <- readResult{err: err}
}

// Emit renders one engine event.
func (c *CLI) Emit(ev types.Event) {
	switch ev.Type {
	case types.EventStatus:
		c.status = ev.Data
	case types.EventPrompt:
		c.printLine(ev.Text)
	default:
		if ev.Text != "" {
			c.printLine(ev.Text)
		}
	}
	if c.Trace && ev.Type != types.EventNarrate && ev.Type != types.EventPrompt {
		c.printTrace(ev)
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit   Exit game",
		"  /help   Show this help",
		"  /state  Debug: dump current state",
		"  /trace  Toggle debug trace output",
		"",
		"Type 'help' for the game's own commands.",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	if c.status == nil {
		c.printSystem("No state reported yet.")
		return
	}
	c.printSystem("State: " + formatData(c.status))
}

func (c *CLI) printTrace(ev types.Event) {
	if len(ev.Data) == 0 {
		c.printSystem("trace " + ev.Type)
		return
	}
	c.printSystem(fmt.Sprintf("trace %s %s", ev.Type, formatData(ev.Data)))
}

// formatData renders event data as sorted key=value pairs.
func formatData(data map[string]any) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, data[k])
	}
	return strings.Join(parts, " ")
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
