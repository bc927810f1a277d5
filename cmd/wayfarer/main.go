// Wayfarer is a text adventure engine: walk a world of locations, fight
// monsters and trade in shops and inns.
// Usage: wayfarer [--version] [--plain] [--script <file>] [--trace] [<world_directory>]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/nathoo/wayfarer/cli"
	"github.com/nathoo/wayfarer/config"
	"github.com/nathoo/wayfarer/engine"
	"github.com/nathoo/wayfarer/engine/command"
	"github.com/nathoo/wayfarer/engine/events"
	"github.com/nathoo/wayfarer/engine/prompt"
	"github.com/nathoo/wayfarer/engine/state"
	"github.com/nathoo/wayfarer/loader"
	"github.com/nathoo/wayfarer/logger"
	"github.com/nathoo/wayfarer/tui"
	"github.com/nathoo/wayfarer/worlds/middleearth"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	trace := false
	var worldDir string
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("wayfarer %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		default:
			if worldDir == "" {
				worldDir = args[i]
			}
		}
	}

	if err := run(worldDir, scriptFile, plain, trace); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(worldDir, scriptFile string, plain, trace bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if worldDir == "" {
		worldDir = cfg.WorldDir
	}

	log, closeLog, err := logger.Open(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Version: version,
	}, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()
	slog.SetDefault(log)

	var defs *state.Defs
	if worldDir != "" {
		defs, err = loader.Load(worldDir)
	} else {
		defs, err = loader.LoadFS(middleearth.FS)
	}
	if err != nil {
		return fmt.Errorf("loading world: %w", err)
	}

	w, err := state.Build(defs, cfg.Rules.Options())
	if err != nil {
		return fmt.Errorf("building world: %w", err)
	}
	log.Info("world loaded",
		"title", defs.Game.Title,
		"locations", len(w.Locations),
		"seed", cfg.Seed,
		"fold_case", cfg.FoldCase)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bus := events.NewBus()
	bus.Subscribe(logger.EventHandler(log))
	registry := command.Builtin(cfg.FoldCase)
	rng := engine.WithRNG(engine.NewRNG(cfg.Seed))

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		c := cli.New()
		c.In = f
		c.EchoInput = true
		c.Trace = trace
		bus.Subscribe(c.Emit)
		return c.Run(ctx, engine.New(w, registry, prompt.IO{In: c, Out: bus}, rng))
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		c := cli.New()
		c.Trace = trace
		bus.Subscribe(c.Emit)
		return c.Run(ctx, engine.New(w, registry, prompt.IO{In: c, Out: bus}, rng))
	}

	host := tui.NewHost(trace)
	bus.Subscribe(host.Emit)
	return host.Run(ctx, engine.New(w, registry, prompt.IO{In: host, Out: bus}, rng))
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
