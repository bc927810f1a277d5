package world

import (
	"fmt"

	"github.com/nathoo/wayfarer/engine/coin"
	"github.com/nathoo/wayfarer/engine/item"
)

// Role distinguishes the player from monsters.
type Role int

const (
	RolePlayer Role = iota
	RoleMonster
)

// Growth holds the per-level constants used when an entity levels up.
type Growth struct {
	HPPerLevel     int
	AttackPerLevel int
	XPPerLevel     int
}

// DefaultGrowth is used when no balancing rules are configured.
var DefaultGrowth = Growth{HPPerLevel: 10, AttackPerLevel: 2, XPPerLevel: 20}

// Reward is what a monster yields when slain.
type Reward struct {
	Experience int
	Gold       coin.Amount
	LootChance map[string]int // item name → percent chance; missing means 100
}

// Entity is the player or a monster.
type Entity struct {
	name        string
	description string
	role        Role
	location    *Location

	level      int
	experience int
	hp         int
	maxHP      int
	baseAttack int
	currency   coin.Amount
	growth     Growth
	reward     Reward

	carried  *item.Container
	equipped *item.Container
}

// NewPlayer creates the player at level 1 in loc. Stats derive from growth.
func NewPlayer(name string, loc *Location, growth Growth, money coin.Amount) *Entity {
	e := &Entity{
		name:     name,
		role:     RolePlayer,
		location: loc,
		level:    1,
		growth:   growth,
		currency: money,
		carried:  item.NewContainer(),
		equipped: item.NewContainer(),
	}
	e.maxHP = e.level * growth.HPPerLevel
	e.hp = e.maxHP
	e.baseAttack = e.level * growth.AttackPerLevel
	return e
}

// NewMonster creates a monster with fixed stats. Monsters do not level.
func NewMonster(name, description string, hp, attack int, reward Reward) *Entity {
	return &Entity{
		name:        name,
		description: description,
		role:        RoleMonster,
		level:       1,
		hp:          hp,
		maxHP:       hp,
		baseAttack:  attack,
		reward:      reward,
		carried:     item.NewContainer(),
		equipped:    item.NewContainer(),
	}
}

func (e *Entity) Name() string          { return e.name }
func (e *Entity) Description() string   { return e.description }
func (e *Entity) Role() Role            { return e.role }
func (e *Entity) Location() *Location   { return e.location }
func (e *Entity) Level() int            { return e.level }
func (e *Entity) Experience() int       { return e.experience }
func (e *Entity) HP() int               { return e.hp }
func (e *Entity) MaxHP() int            { return e.maxHP }
func (e *Entity) BaseAttack() int       { return e.baseAttack }
func (e *Entity) Currency() coin.Amount { return e.currency }
func (e *Entity) Reward() Reward        { return e.reward }
func (e *Entity) Alive() bool           { return e.hp > 0 }

// Carried is the entity's inventory.
func (e *Entity) Carried() *item.Container { return e.carried }

// Equipped is the set of items currently worn or wielded.
func (e *Entity) Equipped() *item.Container { return e.equipped }

// MoveTo follows the exit in direction d.
func (e *Entity) MoveTo(d Direction) (*Location, error) {
	if e.location == nil {
		return nil, ErrNoExit
	}
	next := e.location.Exit(d)
	if next == nil {
		return nil, ErrNoExit
	}
	e.location = next
	return next, nil
}

// PickUp transfers the named item from the current location into the
// carried inventory.
func (e *Entity) PickUp(name string) (*item.Item, error) {
	if e.location == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotHere, name)
	}
	it, ok := e.location.Items.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotHere, name)
	}
	if err := item.Transfer(e.location.Items, e.carried, it); err != nil {
		return nil, err
	}
	return it, nil
}

// Drop transfers the named item from the carried inventory to the current
// location.
func (e *Entity) Drop(name string) (*item.Item, error) {
	it, ok := e.carried.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotCarried, name)
	}
	if e.location == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotHere, name)
	}
	if err := item.Transfer(e.carried, e.location.Items, it); err != nil {
		return nil, err
	}
	return it, nil
}

// Credit adds to the currency balance.
func (e *Entity) Credit(a coin.Amount) {
	e.currency += a
}

// CanAfford reports whether the balance covers a.
func (e *Entity) CanAfford(a coin.Amount) bool {
	return e.currency >= a
}

// Debit subtracts from the currency balance, failing without change if the
// balance is too low.
func (e *Entity) Debit(a coin.Amount) error {
	if !e.CanAfford(a) {
		return fmt.Errorf("%w: need %s, have %s", ErrInsufficientFunds, a, e.currency)
	}
	e.currency -= a
	return nil
}
