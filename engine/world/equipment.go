package world

import (
	"fmt"

	"github.com/nathoo/wayfarer/engine/item"
)

// Equip moves the named item from carried to equipped. Each kind has a single
// slot: equipping a second weapon (or armor) replaces the first, which goes
// back to the carried inventory. Every check runs before any item moves.
func (e *Entity) Equip(name string) (equipped, replaced *item.Item, err error) {
	if e.equipped.Has(name) {
		return nil, nil, fmt.Errorf("%w: %s", ErrAlreadyEquipped, name)
	}
	it, ok := e.carried.Get(name)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotCarried, name)
	}
	if !it.Equippable() {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotEquippable, name)
	}
	replaced = e.slot(it.Kind())
	if replaced != nil && e.carried.Has(replaced.Name()) {
		return nil, nil, fmt.Errorf("cannot swap out %s: %w", replaced.Name(), item.ErrDuplicateName)
	}

	if replaced != nil {
		mustTransfer(e.equipped, e.carried, replaced)
	}
	mustTransfer(e.carried, e.equipped, it)
	return it, replaced, nil
}

// Unequip moves the named item from equipped back to carried.
func (e *Entity) Unequip(name string) (*item.Item, error) {
	it, ok := e.equipped.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotEquipped, name)
	}
	if err := item.Transfer(e.equipped, e.carried, it); err != nil {
		return nil, err
	}
	return it, nil
}

// Weapon returns the equipped weapon, or nil.
func (e *Entity) Weapon() *item.Item { return e.slot(item.Weapon) }

// Armor returns the equipped armor, or nil.
func (e *Entity) Armor() *item.Item { return e.slot(item.Armor) }

// WeaponBonus is the attack added by equipped weapons.
func (e *Entity) WeaponBonus() int {
	bonus := 0
	for _, it := range e.equipped.Items() {
		bonus += it.Damage()
	}
	return bonus
}

// ArmorBonus is the defense added by equipped armor.
func (e *Entity) ArmorBonus() int {
	bonus := 0
	for _, it := range e.equipped.Items() {
		bonus += it.Defense()
	}
	return bonus
}

// Attack is the derived attack: base attack plus weapon bonus.
func (e *Entity) Attack() int {
	return e.baseAttack + e.WeaponBonus()
}

// Defense is the derived defense from equipped armor.
func (e *Entity) Defense() int {
	return e.ArmorBonus()
}

func (e *Entity) slot(k item.Kind) *item.Item {
	for _, it := range e.equipped.Items() {
		if it.Kind() == k {
			return it
		}
	}
	return nil
}

// mustTransfer moves an item whose transfer was already validated.
func mustTransfer(from, to *item.Container, it *item.Item) {
	if err := item.Transfer(from, to, it); err != nil {
		panic(fmt.Sprintf("world: validated transfer of %s failed: %v", it.Name(), err))
	}
}
