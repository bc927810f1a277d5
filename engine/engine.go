// Package engine provides the turn dispatcher that reads one input token,
// resolves it to a command and executes the bound action against the live
// world, emitting narration through the prompt boundary.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/nathoo/wayfarer/engine/command"
	"github.com/nathoo/wayfarer/engine/parser"
	"github.com/nathoo/wayfarer/engine/prompt"
	"github.com/nathoo/wayfarer/engine/state"
	"github.com/nathoo/wayfarer/engine/world"
	"github.com/nathoo/wayfarer/types"
)

// Phase is the dispatcher state.
type Phase int

const (
	AwaitingInput Phase = iota
	Executing
)

func (p Phase) String() string {
	if p == Executing {
		return "executing"
	}
	return "awaiting input"
}

// Resolver maps input tokens to commands. *command.Registry is the
// implementation used in play.
type Resolver interface {
	Resolve(token string) (*command.Command, error)
	Entries() []*command.Command
	FoldCase() bool
}

// InvariantViolation reports a programming defect, such as a resolver that
// returned neither a command nor an unrecognized-token error. It is raised
// with panic, never returned.
type InvariantViolation struct {
	Detail string
}

func (e *InvariantViolation) Error() string {
	return "invariant violated: " + e.Detail
}

// ErrQuit is returned by Turn once the player has quit.
var ErrQuit = errors.New("game over")

// Game holds the live world and runs turns.
type Game struct {
	World    *state.World
	Player   *world.Entity
	Resolver Resolver
	RNG      *RNG

	io    prompt.IO
	phase Phase
	turns int
	done  bool
}

// Option configures a Game.
type Option func(*Game)

// WithRNG replaces the default RNG (seed 1).
func WithRNG(rng *RNG) Option {
	return func(g *Game) { g.RNG = rng }
}

// New creates a game over w. Input comes from io.In and all narration goes to
// io.Out.
func New(w *state.World, r Resolver, io prompt.IO, opts ...Option) *Game {
	g := &Game{
		World:    w,
		Player:   w.Player,
		Resolver: r,
		RNG:      NewRNG(1),
		io:       io,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Phase returns the dispatcher state.
func (g *Game) Phase() Phase { return g.phase }

// Turns returns the number of executed turns.
func (g *Game) Turns() int { return g.turns }

// Done reports whether the player has quit.
func (g *Game) Done() bool { return g.done }

// IO returns the game's input/output boundary.
func (g *Game) IO() prompt.IO { return g.io }

// Run greets the player and runs turns until Quit or an input error. Running
// out of input returns io.EOF, which hosts treat as a normal end.
func (g *Game) Run(ctx context.Context) error {
	g.Intro()
	for !g.done {
		if err := g.Turn(ctx); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Intro narrates the title, the intro text and the starting location.
func (g *Game) Intro() {
	if g.World.Title != "" {
		g.io.Sayf("Welcome to %s!", g.World.Title)
	}
	if g.World.Intro != "" {
		g.io.Say(g.World.Intro)
	}
	g.io.Say("(Type 'help' for a list of available commands)")
	g.describe()
	g.emitStatus()
}

// Turn reads one token and, when it names a command, executes it exactly
// once. An unrecognized token produces a diagnostic and leaves the game
// awaiting input; Turn then returns nil without counting a turn.
func (g *Game) Turn(ctx context.Context) error {
	if g.done {
		return ErrQuit
	}
	g.phase = AwaitingInput

	line, err := g.io.Ask(ctx, "What would you like to do?")
	if err != nil {
		return err
	}
	token := parser.Normalize(line, g.Resolver.FoldCase())

	cmd, err := g.Resolver.Resolve(token)
	var unrecognized *command.UnrecognizedError
	switch {
	case cmd != nil && err == nil:
	case errors.As(err, &unrecognized):
		g.io.Fail("%v", unrecognized)
		return nil
	case err != nil:
		panic(&InvariantViolation{Detail: fmt.Sprintf("resolver failed on %q: %v", token, err)})
	default:
		panic(&InvariantViolation{Detail: fmt.Sprintf("resolver returned neither a command nor an error for %q", token)})
	}

	g.phase = Executing
	defer func() { g.phase = AwaitingInput }()
	if err := g.Execute(ctx, cmd.Action); err != nil {
		return err
	}
	g.turns++
	g.emitStatus()
	return nil
}

// Execute runs one action. Rejected actions are reported as diagnostics;
// only input errors are returned.
func (g *Game) Execute(ctx context.Context, action command.Action) error {
	switch a := action.(type) {
	case command.Navigate:
		g.navigate(a.Dir)
	case command.PickUp:
		return g.pickUp(ctx)
	case command.Drop:
		return g.drop(ctx)
	case command.Equip:
		return g.equip(ctx)
	case command.Unequip:
		return g.unequip(ctx)
	case command.Drink:
		return g.drink(ctx)
	case command.CheckInventory:
		g.inventory()
	case command.CheckEquipment:
		g.equipment()
	case command.CheckStats:
		g.stats()
	case command.Enter:
		return g.enter(ctx)
	case command.Describe:
		g.describe()
	case command.Attack:
		return g.attack(ctx)
	case command.Help:
		g.help()
	case command.Quit:
		g.done = true
		g.io.Event(types.EventQuit, "Farewell, traveler.", map[string]any{"turns": g.turns + 1})
	default:
		panic(&InvariantViolation{Detail: fmt.Sprintf("unhandled action %T", action)})
	}
	return nil
}

func (g *Game) emitStatus() {
	p := g.Player
	loc := ""
	if p.Location() != nil {
		loc = p.Location().Name()
	}
	g.io.Event(types.EventStatus, "", map[string]any{
		"location": loc,
		"hp":       p.HP(),
		"max_hp":   p.MaxHP(),
		"level":    p.Level(),
		"xp":       p.Experience(),
		"gold":     p.Currency().String(),
		"turn":     g.turns,
	})
}
