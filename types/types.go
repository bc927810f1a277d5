// Package types defines the shared data structures for the wayfarer engine.
// This package contains only type definitions, no logic and no methods.
package types

// Event is a narration or domain event emitted by the engine. Hosts render
// Text; subscribers such as the logger inspect Type and Data.
type Event struct {
	Type string
	Text string
	Data map[string]any
}

// Event types emitted by the engine.
const (
	EventNarrate    = "narrate"    // plain narration text
	EventDiagnostic = "diagnostic" // recoverable user input error
	EventPrompt     = "prompt"     // a question asked before reading input
	EventStatus     = "status"     // end-of-turn snapshot for status bars
	EventMoved      = "moved"
	EventItemTaken  = "item_taken"
	EventItemDrop   = "item_dropped"
	EventEquipped   = "equipped"
	EventUnequipped = "unequipped"
	EventDrank      = "drank"
	EventAttacked   = "attacked"
	EventSlain      = "monster_slain"
	EventLoot       = "loot"
	EventLevelUp    = "leveled_up"
	EventPurchased  = "purchased"
	EventSold       = "sold"
	EventLodged     = "lodged"
	EventEntered    = "entered"
	EventLeft       = "left"
	EventQuit       = "quit"
)

// GameDef holds game metadata from Lua.
type GameDef struct {
	Title   string
	Author  string
	Version string
	Start   string // starting location ID
	Intro   string
	Player  string // player character name
}

// ItemDef is the definition of a single item instance.
type ItemDef struct {
	ID          string
	Kind        string // "item", "weapon", "armor", "potion"
	Name        string
	Description string
	Weight      int
	Damage      int
	Defense     int
	Healing     int
	Cost        float64
}

// LootDef is one entry of a monster's loot table.
type LootDef struct {
	ItemID string
	Chance int // percent, 1..100
}

// MonsterDef is the definition of a monster encounter.
type MonsterDef struct {
	ID          string
	Name        string
	Description string
	HP          int
	Attack      int
	Experience  int
	Gold        float64
	Loot        []LootDef
}

// LocationDef is the definition of a location in the world graph.
type LocationDef struct {
	ID          string
	Name        string
	Description string
	Exits       map[string]string // direction → location ID (two-way)
	OneWay      map[string]string // direction → location ID (outgoing only)
	Items       []string
	Monsters    []string
	Places      []string
}

// PlaceDef is the definition of a nested sub-location.
type PlaceDef struct {
	ID          string
	Kind        string // "city", "shop", "inn", "square", "landmark"
	Name        string
	Description string
	Greeting    string
	Buildings   []string          // city
	Stock       []string          // shop
	Cost        float64           // inn
	People      map[string]string // square: name → line
}
