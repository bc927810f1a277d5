package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/nathoo/wayfarer/engine/item"
	"github.com/nathoo/wayfarer/engine/places"
	"github.com/nathoo/wayfarer/engine/resolve"
	"github.com/nathoo/wayfarer/engine/world"
	"github.com/nathoo/wayfarer/types"
)

// StopToken leaves the enter prompt without entering anything.
const StopToken = "stop"

func (g *Game) navigate(d world.Direction) {
	from := g.Player.Location()
	to, err := g.Player.MoveTo(d)
	if err != nil {
		g.io.Fail("%v.", err)
		return
	}
	g.io.Event(types.EventMoved, fmt.Sprintf("You travel %s to %s.", d, to.Name()), map[string]any{
		"from":      from.ID(),
		"to":        to.ID(),
		"direction": d.String(),
	})
	g.describe()
}

func (g *Game) describe() {
	loc := g.Player.Location()
	g.io.Say(loc.Name())
	if loc.Description() != "" {
		g.io.Say(loc.Description())
	}
	if names := loc.Items.Names(); len(names) > 0 {
		g.io.Sayf("Lying here: %s.", strings.Join(names, ", "))
	}
	if names := resolve.MonsterNames(loc); len(names) > 0 {
		g.io.Sayf("Monsters: %s.", resolve.JoinNames(names))
	}
	if names := resolve.PlaceNames(loc); len(names) > 0 {
		g.io.Sayf("Places to enter: %s.", resolve.JoinNames(names))
	}
	exits := loc.Exits()
	if len(exits) == 0 {
		g.io.Say("There are no exits.")
		return
	}
	dirs := make([]string, len(exits))
	for i, d := range exits {
		dirs[i] = d.String()
	}
	g.io.Sayf("Exits: %s.", strings.Join(dirs, ", "))
}

func (g *Game) pickUp(ctx context.Context) error {
	loc := g.Player.Location()
	if loc.Items.Count() == 0 {
		g.io.Say("There is nothing here to pick up.")
		return nil
	}
	g.io.Sayf("You see: %s.", strings.Join(loc.Items.Names(), ", "))
	name, err := g.io.Ask(ctx, "What would you like to pick up?")
	if err != nil {
		return err
	}
	it, err := g.Player.PickUp(name)
	if err != nil {
		g.io.Fail("%v.", err)
		return nil
	}
	g.io.Event(types.EventItemTaken, fmt.Sprintf("You picked up %s.", it.Name()), map[string]any{
		"item":     it.Name(),
		"location": loc.ID(),
	})
	return nil
}

func (g *Game) drop(ctx context.Context) error {
	if g.Player.Carried().Count() == 0 {
		g.io.Say("You are not carrying anything.")
		return nil
	}
	name, err := g.io.Ask(ctx, "What would you like to drop?")
	if err != nil {
		return err
	}
	it, err := g.Player.Drop(name)
	if err != nil {
		g.io.Fail("%v.", err)
		return nil
	}
	g.io.Event(types.EventItemDrop, fmt.Sprintf("You dropped %s.", it.Name()), map[string]any{
		"item":     it.Name(),
		"location": g.Player.Location().ID(),
	})
	return nil
}

func (g *Game) equip(ctx context.Context) error {
	var candidates []string
	for _, it := range g.Player.Carried().Items() {
		if it.Equippable() {
			candidates = append(candidates, it.Summary())
		}
	}
	if len(candidates) == 0 {
		g.io.Say("You have nothing to equip.")
		return nil
	}
	g.io.Sayf("You could equip: %s.", strings.Join(candidates, ", "))
	name, err := g.io.Ask(ctx, "What would you like to equip?")
	if err != nil {
		return err
	}
	it, replaced, err := g.Player.Equip(name)
	if err != nil {
		g.io.Fail("%v.", err)
		return nil
	}
	text := fmt.Sprintf("You equipped %s.", it.Name())
	data := map[string]any{"item": it.Name()}
	if replaced != nil {
		text = fmt.Sprintf("You put away %s and equipped %s.", replaced.Name(), it.Name())
		data["replaced"] = replaced.Name()
	}
	g.io.Event(types.EventEquipped, text, data)
	g.io.Sayf("Attack %d, defense %d.", g.Player.Attack(), g.Player.Defense())
	return nil
}

func (g *Game) unequip(ctx context.Context) error {
	if g.Player.Equipped().Count() == 0 {
		g.io.Say("You have nothing equipped.")
		return nil
	}
	name, err := g.io.Ask(ctx, "What would you like to unequip?")
	if err != nil {
		return err
	}
	it, err := g.Player.Unequip(name)
	if err != nil {
		g.io.Fail("%v.", err)
		return nil
	}
	g.io.Event(types.EventUnequipped, fmt.Sprintf("You unequipped %s.", it.Name()), map[string]any{"item": it.Name()})
	g.io.Sayf("Attack %d, defense %d.", g.Player.Attack(), g.Player.Defense())
	return nil
}

func (g *Game) drink(ctx context.Context) error {
	name, err := g.io.Ask(ctx, "What would you like to drink?")
	if err != nil {
		return err
	}
	it, healed, err := g.Player.Drink(name)
	if err != nil {
		g.io.Fail("%v.", err)
		return nil
	}
	g.io.Event(types.EventDrank, fmt.Sprintf("You drink %s and recover %d HP. HP %d/%d.",
		it.Name(), healed, g.Player.HP(), g.Player.MaxHP()), map[string]any{
		"item":   it.Name(),
		"healed": healed,
	})
	return nil
}

func (g *Game) inventory() {
	carried := g.Player.Carried()
	if carried.Count() == 0 {
		g.io.Say("You are carrying nothing.")
		return
	}
	g.io.Say("You are carrying:")
	g.io.Say(listing(carried)...)
	g.io.Sayf("Total weight: %d.", carried.Weight())
}

func (g *Game) equipment() {
	equipped := g.Player.Equipped()
	if equipped.Count() == 0 {
		g.io.Say("You have nothing equipped.")
	} else {
		g.io.Say("You have equipped:")
		g.io.Say(listing(equipped)...)
	}
	g.io.Sayf("Attack %d (base %d + weapon %d), defense %d.",
		g.Player.Attack(), g.Player.BaseAttack(), g.Player.WeaponBonus(), g.Player.Defense())
}

func (g *Game) stats() {
	p := g.Player
	g.io.Say(
		p.Name(),
		fmt.Sprintf("Level: %d", p.Level()),
		fmt.Sprintf("Experience: %d", p.Experience()),
		fmt.Sprintf("HP: %d/%d", p.HP(), p.MaxHP()),
		fmt.Sprintf("Attack: %d", p.Attack()),
		fmt.Sprintf("Defense: %d", p.Defense()),
		fmt.Sprintf("Gold: %s", p.Currency()),
	)
}

func (g *Game) enter(ctx context.Context) error {
	loc := g.Player.Location()
	if len(loc.Places()) == 0 {
		g.io.Say("There is nowhere to enter here.")
		return nil
	}
	for {
		g.io.Say("You can enter:")
		for _, p := range loc.Places() {
			g.io.Sayf("\t%s (%s)", p.Name(), places.Label(p.Kind()))
		}
		name, err := g.io.Ask(ctx, fmt.Sprintf("Where would you like to go? (type '%s' to stay here)", StopToken))
		if err != nil {
			return err
		}
		if name == StopToken {
			return nil
		}
		p, err := resolve.Place(loc, name)
		if err != nil {
			g.io.Fail("%v.", err)
			continue
		}
		if err := p.Enter(ctx, g.Player, g.io); err != nil {
			return err
		}
		g.io.Sayf("You are back in %s.", loc.Name())
		return nil
	}
}

func (g *Game) help() {
	g.io.Say("Commands:")
	for _, cmd := range g.Resolver.Entries() {
		line := fmt.Sprintf("\t%-10s %s", cmd.Name, cmd.Help)
		if len(cmd.Aliases) > 0 {
			line += fmt.Sprintf(" (also: %s)", strings.Join(cmd.Aliases, ", "))
		}
		g.io.Say(line)
	}
}

func listing(c *item.Container) []string {
	items := c.Items()
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = fmt.Sprintf("\t%s, weight %d", it.Summary(), it.Weight())
	}
	return lines
}
