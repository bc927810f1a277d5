package engine

import (
	"context"
	"fmt"

	"github.com/nathoo/wayfarer/engine/item"
	"github.com/nathoo/wayfarer/engine/resolve"
	"github.com/nathoo/wayfarer/engine/world"
	"github.com/nathoo/wayfarer/types"
)

// attack asks for a monster in the current location and fights one round.
func (g *Game) attack(ctx context.Context) error {
	loc := g.Player.Location()
	names := resolve.MonsterNames(loc)
	if len(names) == 0 {
		g.io.Say("There is nothing here to fight.")
		return nil
	}
	if !g.Player.Alive() {
		g.io.Fail("You are too weak to fight. Rest at an inn first.")
		return nil
	}

	g.io.Sayf("You see %s.", resolve.JoinNames(names))
	name, err := g.io.Ask(ctx, "Which monster would you like to attack?")
	if err != nil {
		return err
	}
	m, err := resolve.Monster(loc, name)
	if err != nil {
		g.io.Fail("%v.", err)
		return nil
	}
	g.round(m)
	return nil
}

// round is one exchange: the player strikes, then a surviving monster strikes
// back once.
func (g *Game) round(m *world.Entity) {
	dealt := world.Attack(g.Player, m)
	g.io.Event(types.EventAttacked, fmt.Sprintf("You strike the %s for %d damage. (%s HP %d/%d)",
		m.Name(), dealt, m.Name(), m.HP(), m.MaxHP()), map[string]any{
		"attacker": g.Player.Name(),
		"target":   m.Name(),
		"damage":   dealt,
	})
	if !m.Alive() {
		g.slay(m)
		return
	}

	taken := world.Attack(m, g.Player)
	g.io.Event(types.EventAttacked, fmt.Sprintf("The %s strikes you for %d damage. (HP %d/%d)",
		m.Name(), taken, g.Player.HP(), g.Player.MaxHP()), map[string]any{
		"attacker": m.Name(),
		"target":   g.Player.Name(),
		"damage":   taken,
	})
	if !g.Player.Alive() {
		g.io.Say("You collapse, barely alive. Rest at an inn to recover your strength.")
	}
}

// slay removes a defeated monster, pays out its reward and drops the loot
// that survives its chance roll.
func (g *Game) slay(m *world.Entity) {
	loc := m.Location()
	loc.RemoveMonster(m)
	reward := m.Reward()
	g.io.Event(types.EventSlain, fmt.Sprintf("The %s is defeated!", m.Name()), map[string]any{
		"monster":    m.Name(),
		"experience": reward.Experience,
		"gold":       reward.Gold.String(),
	})

	if reward.Gold > 0 {
		g.Player.Credit(reward.Gold)
		g.io.Sayf("You found %s gold.", reward.Gold)
	}
	if reward.Experience > 0 {
		g.io.Sayf("You gain %d experience.", reward.Experience)
		if gained := g.Player.GainExperience(reward.Experience); gained > 0 {
			g.io.Event(types.EventLevelUp, fmt.Sprintf("You are now level %d! HP %d, attack %d.",
				g.Player.Level(), g.Player.MaxHP(), g.Player.Attack()), map[string]any{
				"level":  g.Player.Level(),
				"gained": gained,
			})
		}
	}

	for _, it := range m.Carried().Items() {
		chance, ok := reward.LootChance[it.Name()]
		if !ok {
			chance = 100
		}
		if !g.RNG.Chance(chance) {
			continue
		}
		g.dropLoot(m, loc, it)
	}
}

// dropLoot moves won loot onto the floor. When an item of the same name
// already lies there the player takes it instead; if that also fails the
// item is reported lost.
func (g *Game) dropLoot(m *world.Entity, loc *world.Location, it *item.Item) {
	data := map[string]any{"monster": m.Name(), "item": it.Name()}
	if err := item.Transfer(m.Carried(), loc.Items, it); err == nil {
		g.io.Event(types.EventLoot, fmt.Sprintf("The %s dropped %s.", m.Name(), it.Name()), data)
		return
	}
	err := item.Transfer(m.Carried(), g.Player.Carried(), it)
	if err != nil {
		g.io.Fail("The %s's %s is lost: %v.", m.Name(), it.Name(), err)
		return
	}
	data["carried"] = true
	g.io.Event(types.EventLoot, fmt.Sprintf("The %s dropped %s next to another by that name. You take it.",
		m.Name(), it.Name()), data)
}
