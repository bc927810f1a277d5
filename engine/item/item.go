// Package item defines world items and the ownership-tracking Container that
// holds them (carried inventory, equipped set, shop stock, location floor).
package item

import (
	"fmt"

	"github.com/nathoo/wayfarer/engine/coin"
)

// Kind is the role tag of an item.
type Kind int

const (
	Plain Kind = iota
	Weapon
	Armor
	Potion
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "item"
	case Weapon:
		return "weapon"
	case Armor:
		return "armor"
	case Potion:
		return "potion"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a definition kind string to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "item", "plain", "":
		return Plain, true
	case "weapon":
		return Weapon, true
	case "armor":
		return Armor, true
	case "potion":
		return Potion, true
	}
	return Plain, false
}

// Item is a value-like world object. Fields are set once at construction and
// only read afterwards; ownership is tracked by the Container holding it.
type Item struct {
	name        string
	description string
	weight      int
	kind        Kind
	power       int // damage, defense or healing depending on kind
	cost        coin.Amount
}

// New creates a plain item.
func New(name, description string, weight int, cost coin.Amount) *Item {
	return &Item{name: name, description: description, weight: weight, kind: Plain, cost: cost}
}

// NewWeapon creates a weapon adding damage to its wielder's attack.
func NewWeapon(name, description string, weight, damage int, cost coin.Amount) *Item {
	return &Item{name: name, description: description, weight: weight, kind: Weapon, power: damage, cost: cost}
}

// NewArmor creates armor adding defense to its wearer.
func NewArmor(name, description string, weight, defense int, cost coin.Amount) *Item {
	return &Item{name: name, description: description, weight: weight, kind: Armor, power: defense, cost: cost}
}

// NewPotion creates a potion restoring healing hit points when drunk.
func NewPotion(name, description string, weight, healing int, cost coin.Amount) *Item {
	return &Item{name: name, description: description, weight: weight, kind: Potion, power: healing, cost: cost}
}

func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Weight() int         { return i.weight }
func (i *Item) Kind() Kind          { return i.kind }
func (i *Item) Cost() coin.Amount   { return i.cost }

// Damage returns the weapon bonus, or 0 for non-weapons.
func (i *Item) Damage() int {
	if i.kind != Weapon {
		return 0
	}
	return i.power
}

// Defense returns the armor bonus, or 0 for non-armor.
func (i *Item) Defense() int {
	if i.kind != Armor {
		return 0
	}
	return i.power
}

// Healing returns the hit points restored by a potion, or 0 otherwise.
func (i *Item) Healing() int {
	if i.kind != Potion {
		return 0
	}
	return i.power
}

// Equippable reports whether the item can occupy an equipment slot.
func (i *Item) Equippable() bool {
	return i.kind == Weapon || i.kind == Armor
}

// Summary renders the item with its role stat, e.g. "Dagger (weapon, +2 attack)".
func (i *Item) Summary() string {
	switch i.kind {
	case Weapon:
		return fmt.Sprintf("%s (weapon, +%d attack)", i.name, i.power)
	case Armor:
		return fmt.Sprintf("%s (armor, +%d defense)", i.name, i.power)
	case Potion:
		return fmt.Sprintf("%s (potion, heals %d)", i.name, i.power)
	default:
		return i.name
	}
}

func (i *Item) String() string { return i.name }
