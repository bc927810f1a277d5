// Package state builds the live world (locations, items, monsters, places
// and the player) from the immutable definitions loaded from Lua.
package state

import (
	"errors"
	"fmt"
	"sort"

	"github.com/nathoo/wayfarer/engine/coin"
	"github.com/nathoo/wayfarer/engine/dialogue"
	"github.com/nathoo/wayfarer/engine/item"
	"github.com/nathoo/wayfarer/engine/places"
	"github.com/nathoo/wayfarer/engine/world"
	"github.com/nathoo/wayfarer/types"
)

// DefaultPlayerName is used when neither the world nor the rules name the
// player.
const DefaultPlayerName = "Wanderer"

// Defs holds the immutable game definitions loaded from Lua.
type Defs struct {
	Game      types.GameDef
	Items     map[string]types.ItemDef
	Monsters  map[string]types.MonsterDef
	Locations map[string]types.LocationDef
	Places    map[string]types.PlaceDef
}

// NewDefs returns empty definitions ready to be filled.
func NewDefs() *Defs {
	return &Defs{
		Items:     map[string]types.ItemDef{},
		Monsters:  map[string]types.MonsterDef{},
		Locations: map[string]types.LocationDef{},
		Places:    map[string]types.PlaceDef{},
	}
}

// Options carries the balancing constants applied while building.
type Options struct {
	Growth        world.Growth
	StartingMoney coin.Amount
	SellRate      float64
	PlayerName    string // overrides Game.Player when set
}

// DefaultOptions are the stock balancing constants.
func DefaultOptions() Options {
	return Options{
		Growth:        world.DefaultGrowth,
		StartingMoney: coin.Whole(20),
		SellRate:      0.5,
	}
}

// World is the live state built from Defs.
type World struct {
	Title     string
	Intro     string
	Start     *world.Location
	Player    *world.Entity
	Locations map[string]*world.Location
}

// Location returns a built location by ID.
func (w *World) Location(id string) (*world.Location, bool) {
	loc, ok := w.Locations[id]
	return loc, ok
}

var ErrOwnedTwice = errors.New("referenced by more than one owner")

type builder struct {
	defs  *Defs
	opts  Options
	owner map[string]string // "item:id" / "place:id" → owner description
	world *World
}

// Build instantiates every location, item, monster and place. Each item and
// place definition yields exactly one instance with exactly one owner;
// monster definitions yield a fresh monster per location that lists them.
func Build(defs *Defs, opts Options) (*World, error) {
	b := &builder{
		defs:  defs,
		opts:  opts,
		owner: map[string]string{},
		world: &World{
			Title:     defs.Game.Title,
			Intro:     defs.Game.Intro,
			Locations: make(map[string]*world.Location, len(defs.Locations)),
		},
	}

	ids := sortedKeys(defs.Locations)
	for _, id := range ids {
		def := defs.Locations[id]
		name := def.Name
		if name == "" {
			name = id
		}
		b.world.Locations[id] = world.NewLocation(id, name, def.Description)
	}

	for _, id := range ids {
		if err := b.populate(id, defs.Locations[id]); err != nil {
			return nil, fmt.Errorf("location %q: %w", id, err)
		}
	}
	for _, id := range ids {
		if err := b.link(id, defs.Locations[id]); err != nil {
			return nil, fmt.Errorf("location %q: %w", id, err)
		}
	}

	start, ok := b.world.Locations[defs.Game.Start]
	if !ok {
		return nil, fmt.Errorf("start location %q not defined", defs.Game.Start)
	}
	b.world.Start = start

	name := opts.PlayerName
	if name == "" {
		name = defs.Game.Player
	}
	if name == "" {
		name = DefaultPlayerName
	}
	b.world.Player = world.NewPlayer(name, start, opts.Growth, opts.StartingMoney)
	return b.world, nil
}

func (b *builder) claim(kind, id, owner string) error {
	key := kind + ":" + id
	if prev, ok := b.owner[key]; ok {
		return fmt.Errorf("%s %q %w: %s and %s", kind, id, ErrOwnedTwice, prev, owner)
	}
	b.owner[key] = owner
	return nil
}

func (b *builder) populate(id string, def types.LocationDef) error {
	loc := b.world.Locations[id]
	owner := "location " + id

	for _, itemID := range def.Items {
		it, err := b.item(itemID, owner)
		if err != nil {
			return err
		}
		if err := loc.Items.Add(it); err != nil {
			return err
		}
	}
	for _, monsterID := range def.Monsters {
		m, err := b.monster(monsterID, owner)
		if err != nil {
			return err
		}
		loc.AddMonster(m)
	}
	for _, placeID := range def.Places {
		p, err := b.place(placeID, owner)
		if err != nil {
			return err
		}
		if err := loc.AddPlace(p); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) link(id string, def types.LocationDef) error {
	loc := b.world.Locations[id]
	for _, oneWay := range []bool{false, true} {
		exits := def.Exits
		if oneWay {
			exits = def.OneWay
		}
		for _, dirName := range sortedKeys(exits) {
			dir, err := world.ParseDirection(dirName)
			if err != nil {
				return err
			}
			target, ok := b.world.Locations[exits[dirName]]
			if !ok {
				return fmt.Errorf("exit %s leads to undefined location %q", dirName, exits[dirName])
			}
			if cur := loc.Exit(dir); cur != nil && cur != target {
				return fmt.Errorf("exit %s conflicts with an exit to %q", dirName, cur.ID())
			}
			if !oneWay {
				if back := target.Exit(dir.Opposite()); back != nil && back != loc {
					return fmt.Errorf("exit %s conflicts with %s exit of %q", dirName, dir.Opposite(), target.ID())
				}
			}
			if err := loc.CreateExit(dir, target, oneWay); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *builder) item(id, owner string) (*item.Item, error) {
	def, ok := b.defs.Items[id]
	if !ok {
		return nil, fmt.Errorf("item %q not defined", id)
	}
	if err := b.claim("item", id, owner); err != nil {
		return nil, err
	}
	return NewItem(def)
}

// NewItem instantiates an item definition.
func NewItem(def types.ItemDef) (*item.Item, error) {
	kind, ok := item.ParseKind(def.Kind)
	if !ok {
		return nil, fmt.Errorf("item %q: unknown kind %q", def.ID, def.Kind)
	}
	name := def.Name
	if name == "" {
		name = def.ID
	}
	cost := coin.FromFloat(def.Cost)
	switch kind {
	case item.Weapon:
		return item.NewWeapon(name, def.Description, def.Weight, def.Damage, cost), nil
	case item.Armor:
		return item.NewArmor(name, def.Description, def.Weight, def.Defense, cost), nil
	case item.Potion:
		return item.NewPotion(name, def.Description, def.Weight, def.Healing, cost), nil
	default:
		return item.New(name, def.Description, def.Weight, cost), nil
	}
}

func (b *builder) monster(id, owner string) (*world.Entity, error) {
	def, ok := b.defs.Monsters[id]
	if !ok {
		return nil, fmt.Errorf("monster %q not defined", id)
	}
	name := def.Name
	if name == "" {
		name = id
	}
	reward := world.Reward{
		Experience: def.Experience,
		Gold:       coin.FromFloat(def.Gold),
		LootChance: map[string]int{},
	}
	m := world.NewMonster(name, def.Description, def.HP, def.Attack, reward)
	for _, loot := range def.Loot {
		it, err := b.item(loot.ItemID, fmt.Sprintf("monster %s in %s", id, owner))
		if err != nil {
			return nil, fmt.Errorf("monster %q loot: %w", id, err)
		}
		if err := m.Carried().Add(it); err != nil {
			return nil, fmt.Errorf("monster %q loot: %w", id, err)
		}
		reward.LootChance[it.Name()] = loot.Chance
	}
	return m, nil
}

func (b *builder) place(id, owner string) (world.Place, error) {
	def, ok := b.defs.Places[id]
	if !ok {
		return nil, fmt.Errorf("place %q not defined", id)
	}
	if err := b.claim("place", id, owner); err != nil {
		return nil, err
	}
	name := def.Name
	if name == "" {
		name = id
	}

	switch def.Kind {
	case places.KindCity:
		var buildings []world.Place
		for _, bid := range def.Buildings {
			bp, err := b.place(bid, "city "+id)
			if err != nil {
				return nil, fmt.Errorf("city %q: %w", id, err)
			}
			if bp.Kind() == places.KindCity {
				return nil, fmt.Errorf("city %q: building %q is itself a city", id, bid)
			}
			buildings = append(buildings, bp)
		}
		return places.NewCity(name, def.Description, def.Greeting, buildings...), nil
	case places.KindShop:
		stock := item.NewContainer()
		for _, itemID := range def.Stock {
			it, err := b.item(itemID, "shop "+id)
			if err != nil {
				return nil, fmt.Errorf("shop %q: %w", id, err)
			}
			if err := stock.Add(it); err != nil {
				return nil, fmt.Errorf("shop %q: %w", id, err)
			}
		}
		return places.NewShop(name, def.Description, def.Greeting, stock, b.opts.SellRate), nil
	case places.KindInn:
		return places.NewInn(name, def.Description, def.Greeting, coin.FromFloat(def.Cost)), nil
	case places.KindSquare:
		return places.NewSquare(name, def.Description, def.Greeting, dialogue.NewBook(def.People)), nil
	case places.KindLandmark:
		return places.NewLandmark(name, def.Description), nil
	default:
		return nil, fmt.Errorf("place %q: unknown kind %q", id, def.Kind)
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
