package loader

import (
	"github.com/nathoo/wayfarer/engine/places"
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers all Lua constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	// Item "id" { ... } and friends are curried: Item("id") returns a
	// function that takes the table.
	for _, kind := range []string{"item", "weapon", "armor", "potion"} {
		L.SetGlobal(constructorName(kind), curried(L, kind, &coll.items))
	}
	L.SetGlobal("Monster", curried(L, "monster", &coll.monsters))
	L.SetGlobal("Location", curried(L, "location", &coll.locations))
	for _, kind := range []string{places.KindCity, places.KindShop, places.KindInn, places.KindSquare, places.KindLandmark} {
		L.SetGlobal(constructorName(kind), curried(L, kind, &coll.places))
	}
}

func curried(L *lua.LState, kind string, into *[]rawDef) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			*into = append(*into, rawDef{id: id, kind: kind, table: tbl})
			return 0
		}))
		return 1
	})
}

// constructorName maps "weapon" to the Lua global "Weapon".
func constructorName(kind string) string {
	return string(kind[0]-'a'+'A') + kind[1:]
}
