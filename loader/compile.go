// Package loader loads Lua world content into Go structs at startup.
// The Lua VM is discarded after loading; no Lua runs during play.
package loader

import (
	"fmt"
	"sort"

	"github.com/nathoo/wayfarer/engine/state"
	"github.com/nathoo/wayfarer/types"
	lua "github.com/yuin/gopher-lua"
)

// rawDef holds a constructor table before compilation.
type rawDef struct {
	id    string
	kind  string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getNumber returns a numeric field from a Lua table, or 0 if missing.
func getNumber(tbl *lua.LTable, key string) float64 {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key))
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// getStringList reads an array of strings such as items = { "a", "b" }.
func getStringList(tbl *lua.LTable, key string) ([]string, error) {
	list := getTable(tbl, key)
	if list == nil {
		return nil, nil
	}
	out := make([]string, 0, list.MaxN())
	for i := 1; i <= list.MaxN(); i++ {
		s, ok := list.RawGetInt(i).(lua.LString)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be a string", key, i)
		}
		out = append(out, string(s))
	}
	return out, nil
}

// getStringMap reads a table of string keys to string values.
func getStringMap(tbl *lua.LTable, key string) (map[string]string, error) {
	t := getTable(tbl, key)
	if t == nil {
		return nil, nil
	}
	m := map[string]string{}
	var bad error
	t.ForEach(func(k, v lua.LValue) {
		ks, kok := k.(lua.LString)
		vs, vok := v.(lua.LString)
		if !kok || !vok {
			if bad == nil {
				bad = fmt.Errorf("%s must map strings to strings", key)
			}
			return
		}
		m[string(ks)] = string(vs)
	})
	if bad != nil {
		return nil, bad
	}
	return m, nil
}

// compile converts all collected Lua data into a Defs struct.
func compile(coll *collector) (*state.Defs, error) {
	defs := state.NewDefs()

	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}
	defs.Game = compileGame(coll.game)

	for _, raw := range coll.items {
		if _, dup := defs.Items[raw.id]; dup {
			return nil, fmt.Errorf("item %q defined twice", raw.id)
		}
		defs.Items[raw.id] = compileItem(raw)
	}
	for _, raw := range coll.monsters {
		if _, dup := defs.Monsters[raw.id]; dup {
			return nil, fmt.Errorf("monster %q defined twice", raw.id)
		}
		m, err := compileMonster(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling monster %s: %w", raw.id, err)
		}
		defs.Monsters[raw.id] = m
	}
	for _, raw := range coll.locations {
		if _, dup := defs.Locations[raw.id]; dup {
			return nil, fmt.Errorf("location %q defined twice", raw.id)
		}
		loc, err := compileLocation(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling location %s: %w", raw.id, err)
		}
		defs.Locations[raw.id] = loc
	}
	for _, raw := range coll.places {
		if _, dup := defs.Places[raw.id]; dup {
			return nil, fmt.Errorf("place %q defined twice", raw.id)
		}
		p, err := compilePlace(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling %s %s: %w", raw.kind, raw.id, err)
		}
		defs.Places[raw.id] = p
	}
	return defs, nil
}

func compileGame(tbl *lua.LTable) types.GameDef {
	return types.GameDef{
		Title:   getString(tbl, "title"),
		Author:  getString(tbl, "author"),
		Version: getString(tbl, "version"),
		Start:   getString(tbl, "start"),
		Intro:   getString(tbl, "intro"),
		Player:  getString(tbl, "player"),
	}
}

func compileItem(raw rawDef) types.ItemDef {
	t := raw.table
	return types.ItemDef{
		ID:          raw.id,
		Kind:        raw.kind,
		Name:        getString(t, "name"),
		Description: getString(t, "description"),
		Weight:      getInt(t, "weight"),
		Damage:      getInt(t, "damage"),
		Defense:     getInt(t, "defense"),
		Healing:     getInt(t, "healing"),
		Cost:        getNumber(t, "cost"),
	}
}

func compileMonster(raw rawDef) (types.MonsterDef, error) {
	t := raw.table
	m := types.MonsterDef{
		ID:          raw.id,
		Name:        getString(t, "name"),
		Description: getString(t, "description"),
		HP:          getInt(t, "hp"),
		Attack:      getInt(t, "attack"),
		Experience:  getInt(t, "experience"),
		Gold:        getNumber(t, "gold"),
	}
	loot := getTable(t, "loot")
	if loot == nil {
		return m, nil
	}
	for i := 1; i <= loot.MaxN(); i++ {
		switch entry := loot.RawGetInt(i).(type) {
		case lua.LString:
			// Shorthand: loot = { "dagger" } always drops.
			m.Loot = append(m.Loot, types.LootDef{ItemID: string(entry), Chance: 100})
		case *lua.LTable:
			chance := 100
			if _, ok := entry.RawGetString("chance").(lua.LNumber); ok {
				chance = getInt(entry, "chance")
			}
			m.Loot = append(m.Loot, types.LootDef{ItemID: getString(entry, "item"), Chance: chance})
		default:
			return m, fmt.Errorf("loot[%d] must be an item id or { item = ..., chance = ... }", i)
		}
	}
	return m, nil
}

func compileLocation(raw rawDef) (types.LocationDef, error) {
	t := raw.table
	loc := types.LocationDef{
		ID:          raw.id,
		Name:        getString(t, "name"),
		Description: getString(t, "description"),
	}
	var err error
	if loc.Exits, err = getStringMap(t, "exits"); err != nil {
		return loc, err
	}
	if loc.OneWay, err = getStringMap(t, "one_way"); err != nil {
		return loc, err
	}
	if loc.Items, err = getStringList(t, "items"); err != nil {
		return loc, err
	}
	if loc.Monsters, err = getStringList(t, "monsters"); err != nil {
		return loc, err
	}
	if loc.Places, err = getStringList(t, "places"); err != nil {
		return loc, err
	}
	return loc, nil
}

func compilePlace(raw rawDef) (types.PlaceDef, error) {
	t := raw.table
	p := types.PlaceDef{
		ID:          raw.id,
		Kind:        raw.kind,
		Name:        getString(t, "name"),
		Description: getString(t, "description"),
		Greeting:    getString(t, "greeting"),
		Cost:        getNumber(t, "cost"),
	}
	var err error
	if p.Buildings, err = getStringList(t, "buildings"); err != nil {
		return p, err
	}
	if p.Stock, err = getStringList(t, "stock"); err != nil {
		return p, err
	}
	if p.People, err = getStringMap(t, "people"); err != nil {
		return p, err
	}
	return p, nil
}

// sortedLuaFiles returns .lua files with game.lua first and the rest sorted
// alphabetically.
func sortedLuaFiles(files []string) []string {
	var gameFile string
	var others []string
	for _, f := range files {
		if f == "game.lua" {
			gameFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if gameFile != "" {
		return append([]string{gameFile}, others...)
	}
	return others
}
