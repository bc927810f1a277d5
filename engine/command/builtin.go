package command

import (
	"fmt"

	"github.com/nathoo/wayfarer/engine/world"
)

var builtins = []struct {
	name    string
	help    string
	action  Action
	aliases []string
}{
	{"help", "List the commands you can use", Help{}, []string{"?"}},
	{"quit", "Leave the game", Quit{}, nil},
	{"north", "Travel north", Navigate{Dir: world.North}, []string{"n"}},
	{"south", "Travel south", Navigate{Dir: world.South}, []string{"s"}},
	{"east", "Travel east", Navigate{Dir: world.East}, []string{"e"}},
	{"west", "Travel west", Navigate{Dir: world.West}, []string{"w"}},
	{"describe", "Describe your surroundings", Describe{}, []string{"look", "l"}},
	{"pick up", "Pick up an item lying here", PickUp{}, []string{"get", "take"}},
	{"drop", "Drop a carried item here", Drop{}, nil},
	{"equip", "Equip a carried weapon or armor", Equip{}, nil},
	{"unequip", "Return an equipped item to your inventory", Unequip{}, nil},
	{"drink", "Drink a carried potion", Drink{}, nil},
	{"inventory", "List the items you carry", CheckInventory{}, []string{"i"}},
	{"equipment", "List the items you have equipped", CheckEquipment{}, nil},
	{"stats", "Show your level, health, attack, defense and gold", CheckStats{}, nil},
	{"enter", "Enter a place within this location", Enter{}, nil},
	{"attack", "Attack a monster here", Attack{}, []string{"fight"}},
}

// Builtin returns a registry holding the standard command set.
func Builtin(fold bool) *Registry {
	r := NewRegistry(fold)
	for _, b := range builtins {
		if err := r.Register(b.name, b.help, b.action); err != nil {
			panic(fmt.Sprintf("command: builtin %s: %v", b.name, err))
		}
		for _, a := range b.aliases {
			if err := r.RegisterAlias(a, b.name); err != nil {
				panic(fmt.Sprintf("command: builtin alias %s: %v", a, err))
			}
		}
	}
	return r
}
