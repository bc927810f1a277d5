package loader

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/nathoo/wayfarer/engine/places"
	"github.com/nathoo/wayfarer/engine/state"
	"github.com/nathoo/wayfarer/engine/world"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

func (e *ValidationError) errorf(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

func (e *ValidationError) warnf(format string, args ...any) {
	e.Warnings = append(e.Warnings, fmt.Sprintf(format, args...))
}

// validate checks the compiled defs for referential integrity, exit
// consistency and single ownership of every item and place.
func validate(defs *state.Defs) error {
	ve := check(defs)
	for _, w := range ve.Warnings {
		slog.Warn("world definition", "warning", w)
	}
	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func check(defs *state.Defs) *ValidationError {
	ve := &ValidationError{}

	if defs.Game.Title == "" {
		ve.errorf("Game.title is required")
	}
	if defs.Game.Start == "" {
		ve.errorf("Game.start is required")
	} else if _, ok := defs.Locations[defs.Game.Start]; !ok {
		ve.errorf("start location %q not found in defined locations", defs.Game.Start)
	}

	checkExits(defs, ve)
	checkStats(defs, ve)
	checkReferences(defs, ve)
	return ve
}

// checkExits verifies directions, targets and that no direction slot is
// claimed by two different exits once two-way exits are mirrored.
func checkExits(defs *state.Defs, ve *ValidationError) {
	type slot struct {
		loc string
		dir world.Direction
	}
	slots := map[slot]string{}
	claim := func(loc string, dir world.Direction, target, via string) {
		s := slot{loc, dir}
		if cur, ok := slots[s]; ok && cur != target {
			ve.errorf("location %q exit %s leads to both %q and %q (%s)", loc, dir, cur, target, via)
			return
		}
		slots[s] = target
	}

	for _, id := range sortedKeys(defs.Locations) {
		loc := defs.Locations[id]
		for _, oneWay := range []bool{false, true} {
			exits := loc.Exits
			if oneWay {
				exits = loc.OneWay
			}
			for _, dirName := range sortedKeys(exits) {
				target := exits[dirName]
				dir, err := world.ParseDirection(dirName)
				if err != nil {
					ve.errorf("location %q: %v", id, err)
					continue
				}
				if _, ok := defs.Locations[target]; !ok {
					ve.errorf("location %q exit %q points to undefined location %q", id, dirName, target)
					continue
				}
				claim(id, dir, target, "exit of "+id)
				if !oneWay {
					claim(target, dir.Opposite(), id, "return exit from "+id)
				}
			}
		}
	}
}

func checkStats(defs *state.Defs, ve *ValidationError) {
	for _, id := range sortedKeys(defs.Items) {
		it := defs.Items[id]
		nonNegative(ve, "item "+id, map[string]float64{
			"weight":  float64(it.Weight),
			"damage":  float64(it.Damage),
			"defense": float64(it.Defense),
			"healing": float64(it.Healing),
			"cost":    it.Cost,
		})
	}
	for _, id := range sortedKeys(defs.Monsters) {
		m := defs.Monsters[id]
		if m.HP <= 0 {
			ve.errorf("monster %q hp must be positive", id)
		}
		nonNegative(ve, "monster "+id, map[string]float64{
			"attack":     float64(m.Attack),
			"experience": float64(m.Experience),
			"gold":       m.Gold,
		})
		for _, loot := range m.Loot {
			if loot.Chance < 1 || loot.Chance > 100 {
				ve.errorf("monster %q loot %q chance %d outside 1..100", id, loot.ItemID, loot.Chance)
			}
		}
	}
	for _, id := range sortedKeys(defs.Places) {
		if p := defs.Places[id]; p.Cost < 0 {
			ve.errorf("%s %q cost must not be negative", p.Kind, id)
		}
	}
}

func nonNegative(ve *ValidationError, what string, fields map[string]float64) {
	for _, name := range sortedKeys(fields) {
		if fields[name] < 0 {
			ve.errorf("%s %s must not be negative", what, name)
		}
	}
}

// checkReferences resolves every id a definition names and counts owners.
// Monsters are instantiated once per listing location, so their loot is
// owned once per listing too.
func checkReferences(defs *state.Defs, ve *ValidationError) {
	itemOwners := map[string][]string{}
	placeOwners := map[string][]string{}
	monsterUsed := map[string]bool{}

	ownItem := func(id, owner string) {
		if _, ok := defs.Items[id]; !ok {
			ve.errorf("%s references undefined item %q", owner, id)
			return
		}
		itemOwners[id] = append(itemOwners[id], owner)
	}
	ownPlace := func(id, owner string) bool {
		if _, ok := defs.Places[id]; !ok {
			ve.errorf("%s references undefined place %q", owner, id)
			return false
		}
		placeOwners[id] = append(placeOwners[id], owner)
		return true
	}

	for _, id := range sortedKeys(defs.Locations) {
		loc := defs.Locations[id]
		owner := "location " + id
		for _, itemID := range loc.Items {
			ownItem(itemID, owner)
		}
		for _, monsterID := range loc.Monsters {
			m, ok := defs.Monsters[monsterID]
			if !ok {
				ve.errorf("%s references undefined monster %q", owner, monsterID)
				continue
			}
			monsterUsed[monsterID] = true
			for _, loot := range m.Loot {
				ownItem(loot.ItemID, fmt.Sprintf("monster %s in %s", monsterID, owner))
			}
		}
		for _, placeID := range loc.Places {
			ownPlace(placeID, owner)
		}
	}

	for _, id := range sortedKeys(defs.Places) {
		p := defs.Places[id]
		owner := p.Kind + " " + id
		if !places.Known(p.Kind) {
			ve.errorf("place %q has unknown kind %q", id, p.Kind)
		}
		for _, itemID := range p.Stock {
			ownItem(itemID, owner)
		}
		for _, bid := range p.Buildings {
			if !ownPlace(bid, owner) {
				continue
			}
			if defs.Places[bid].Kind == places.KindCity {
				ve.errorf("%s building %q is itself a city", owner, bid)
			}
		}
		if len(p.Buildings) > 0 && p.Kind != places.KindCity {
			ve.warnf("%s lists buildings but only cities have them", owner)
		}
	}

	byName := map[string][]string{}
	for _, id := range sortedKeys(defs.Items) {
		name := defs.Items[id].Name
		if name == "" {
			name = id
		}
		byName[name] = append(byName[name], id)
	}
	for _, name := range sortedKeys(byName) {
		if ids := byName[name]; len(ids) > 1 {
			ve.errorf("items %s share the name %q", strings.Join(ids, ", "), name)
		}
	}

	for _, id := range sortedKeys(itemOwners) {
		if owners := itemOwners[id]; len(owners) > 1 {
			ve.errorf("item %q is owned by more than one holder: %s", id, strings.Join(owners, ", "))
		}
	}
	for _, id := range sortedKeys(placeOwners) {
		if owners := placeOwners[id]; len(owners) > 1 {
			ve.errorf("place %q is placed more than once: %s", id, strings.Join(owners, ", "))
		}
	}

	for _, id := range sortedKeys(defs.Items) {
		if len(itemOwners[id]) == 0 {
			ve.warnf("item %q is never placed", id)
		}
	}
	for _, id := range sortedKeys(defs.Monsters) {
		if !monsterUsed[id] {
			ve.warnf("monster %q is never placed", id)
		}
	}
	for _, id := range sortedKeys(defs.Places) {
		if len(placeOwners[id]) == 0 {
			ve.warnf("place %q is never placed", id)
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
