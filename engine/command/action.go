package command

import "github.com/nathoo/wayfarer/engine/world"

// Action is one of the closed set of executable command variants. The set is
// sealed: only this package can add variants, so the executor's type switch
// is exhaustive.
type Action interface {
	action()
}

// Navigate moves the player through the exit in Dir.
type Navigate struct{ Dir world.Direction }

// PickUp asks for an item name and takes it from the current location.
type PickUp struct{}

// Drop asks for an item name and leaves it in the current location.
type Drop struct{}

// Equip asks for a carried weapon or armor and equips it.
type Equip struct{}

// Unequip asks for an equipped item and returns it to the carried inventory.
type Unequip struct{}

// Drink asks for a carried potion and drinks it.
type Drink struct{}

// CheckInventory lists carried items.
type CheckInventory struct{}

// CheckEquipment lists equipped items.
type CheckEquipment struct{}

// CheckStats shows level, experience, hit points, attack, defense and gold.
type CheckStats struct{}

// Enter lists the nested places here and enters the one named next.
type Enter struct{}

// Describe describes the current location.
type Describe struct{}

// Attack asks for a monster name and strikes it.
type Attack struct{}

// Help lists the registered commands.
type Help struct{}

// Quit ends the game.
type Quit struct{}

func (Navigate) action()       {}
func (PickUp) action()         {}
func (Drop) action()           {}
func (Equip) action()          {}
func (Unequip) action()        {}
func (Drink) action()          {}
func (CheckInventory) action() {}
func (CheckEquipment) action() {}
func (CheckStats) action()     {}
func (Enter) action()          {}
func (Describe) action()       {}
func (Attack) action()         {}
func (Help) action()           {}
func (Quit) action()           {}
