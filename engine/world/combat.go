package world

import (
	"fmt"

	"github.com/nathoo/wayfarer/engine/item"
)

// Attack has attacker strike target for base attack plus weapon bonus and
// returns the damage that got through the target's armor.
func Attack(attacker, target *Entity) int {
	return target.TakeDamage(attacker.Attack())
}

// TakeDamage reduces hit points by max(amount-armor, 0), floored at zero, and
// returns the hit points actually lost.
func (e *Entity) TakeDamage(amount int) int {
	dealt := max(amount-e.ArmorBonus(), 0)
	hp := e.hp - dealt
	if hp < 0 {
		hp = 0
	}
	lost := e.hp - hp
	e.hp = hp
	return lost
}

// Heal restores hit points, clamped to the maximum, and returns the amount
// actually restored.
func (e *Entity) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	hp := min(e.hp+amount, e.maxHP)
	restored := hp - e.hp
	e.hp = hp
	return restored
}

// RestoreFull sets hit points to the maximum.
func (e *Entity) RestoreFull() {
	e.hp = e.maxHP
}

// Drink consumes the named potion from the carried inventory and heals by its
// healing value. The potion is destroyed.
func (e *Entity) Drink(name string) (*item.Item, int, error) {
	it, ok := e.carried.Get(name)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrNotCarried, name)
	}
	if it.Kind() != item.Potion {
		return nil, 0, fmt.Errorf("%w: %s", ErrNotPotion, name)
	}
	if err := e.carried.Remove(it); err != nil {
		return nil, 0, err
	}
	return it, e.Heal(it.Healing()), nil
}
