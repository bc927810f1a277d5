package places

import (
	"context"
	"fmt"

	"github.com/nathoo/wayfarer/engine/coin"
	"github.com/nathoo/wayfarer/engine/economy"
	"github.com/nathoo/wayfarer/engine/prompt"
	"github.com/nathoo/wayfarer/engine/world"
	"github.com/nathoo/wayfarer/types"
)

// Inn restores the guest to full health for a price.
type Inn struct {
	base
	cost coin.Amount
}

// NewInn creates an inn charging cost per night.
func NewInn(name, description, greeting string, cost coin.Amount) *Inn {
	return &Inn{base: base{name: name, description: description, greeting: greeting}, cost: cost}
}

func (n *Inn) Kind() string { return KindInn }

// Cost is the price of a night.
func (n *Inn) Cost() coin.Amount { return n.cost }

// Enter runs the inn menu until the guest leaves.
func (n *Inn) Enter(ctx context.Context, guest *world.Entity, io prompt.IO) error {
	n.arrive(io, KindInn, guest)
	options := []string{
		fmt.Sprintf("Stay the night (%s gold)", n.cost),
		"Leave the inn",
	}

	for {
		choice, err := menu(ctx, io, "What would you like to do?", options)
		if err != nil {
			return err
		}
		if choice == 2 {
			n.leave(io, KindInn)
			return nil
		}

		if err := economy.Lodge(guest, n.cost); err != nil {
			io.Fail("You cannot afford a room. A night costs %s gold and you have %s.", n.cost, guest.Currency())
			continue
		}
		io.Event(types.EventLodged, fmt.Sprintf("You sleep soundly. HP restored to %d. You have %s gold left.",
			guest.HP(), guest.Currency()), map[string]any{
			"inn":  n.name,
			"cost": n.cost.Float(),
			"hp":   guest.HP(),
		})
	}
}
