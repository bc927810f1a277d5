// Package places implements the sub-locations nested in a world location:
// cities and the shops, inns and squares inside them, plus standalone
// landmarks. Each one runs its own interaction loop and returns control to
// the caller when the guest leaves.
package places

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nathoo/wayfarer/engine/prompt"
	"github.com/nathoo/wayfarer/engine/world"
	"github.com/nathoo/wayfarer/types"
)

// Place kinds.
const (
	KindCity     = "city"
	KindShop     = "shop"
	KindInn      = "inn"
	KindSquare   = "square"
	KindLandmark = "landmark"
)

// Label renders a kind for display, e.g. "Inn".
func Label(kind string) string {
	return cases.Title(language.English).String(kind)
}

// Known reports whether kind names one of the place kinds.
func Known(kind string) bool {
	switch kind {
	case KindCity, KindShop, KindInn, KindSquare, KindLandmark:
		return true
	}
	return false
}

type base struct {
	name        string
	description string
	greeting    string
}

func (b *base) Name() string        { return b.name }
func (b *base) Description() string { return b.description }

// Greeting is said when a guest walks in.
func (b *base) Greeting() string { return b.greeting }

func (b *base) arrive(io prompt.IO, kind string, guest *world.Entity) {
	io.Event(types.EventEntered, fmt.Sprintf("Entering %s.", b.name), map[string]any{
		"place": b.name,
		"kind":  kind,
		"guest": guest.Name(),
	})
	if b.description != "" {
		io.Say(b.description)
	}
	if b.greeting != "" {
		io.Say(b.greeting)
	}
}

func (b *base) leave(io prompt.IO, kind string) {
	io.Event(types.EventLeft, fmt.Sprintf("Leaving %s.", b.name), map[string]any{
		"place": b.name,
		"kind":  kind,
	})
}

// menu shows numbered options and reads choices until one of them is picked.
// It returns the 1-based index of the choice.
func menu(ctx context.Context, io prompt.IO, question string, options []string) (int, error) {
	for {
		for i, opt := range options {
			io.Sayf("  %d. %s", i+1, opt)
		}
		choice, err := io.Ask(ctx, question)
		if err != nil {
			return 0, err
		}
		for i := range options {
			if choice == fmt.Sprint(i+1) {
				return i + 1, nil
			}
		}
		io.Fail("I did not recognize %q. Choose a number from 1 to %d.", choice, len(options))
	}
}

func bulleted(names []string) string {
	return "\t" + strings.Join(names, "\n\t")
}
