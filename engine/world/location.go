// Package world implements the location graph and the entities that move
// through it: exits, nested places, carried and equipped items, combat,
// healing and leveling.
package world

import (
	"context"
	"fmt"

	"github.com/nathoo/wayfarer/engine/item"
	"github.com/nathoo/wayfarer/engine/prompt"
)

// Place is a nested sub-location (city, shop, inn, square, landmark) with its
// own interaction loop. Enter returns when the guest leaves.
type Place interface {
	Name() string
	Description() string
	Kind() string
	Enter(ctx context.Context, guest *Entity, io prompt.IO) error
}

// Location is a node of the world graph.
type Location struct {
	id          string
	name        string
	description string
	exits       [len(Directions)]*Location
	places      []Place
	monsters    []*Entity

	// Items lying on the ground.
	Items *item.Container
}

// NewLocation creates a location with no exits, places or items.
func NewLocation(id, name, description string) *Location {
	return &Location{
		id:          id,
		name:        name,
		description: description,
		Items:       item.NewContainer(),
	}
}

func (l *Location) ID() string          { return l.id }
func (l *Location) Name() string        { return l.name }
func (l *Location) Description() string { return l.description }

// CreateExit links l to target in direction d. Unless oneWay is set the
// reverse edge from target back to l is created too.
func (l *Location) CreateExit(d Direction, target *Location, oneWay bool) error {
	if !d.Valid() {
		return &InvalidDirectionError{Value: d.String()}
	}
	if target == nil {
		return fmt.Errorf("%w: %s of %s", ErrNoTarget, d, l.id)
	}
	l.exits[d] = target
	if !oneWay {
		target.exits[d.Opposite()] = l
	}
	return nil
}

// ClearExit removes the exit in direction d. Unless oneWay is set, the
// reverse edge is removed as well when it still leads back to l.
// Clearing an empty exit is a no-op.
func (l *Location) ClearExit(d Direction, oneWay bool) error {
	if !d.Valid() {
		return &InvalidDirectionError{Value: d.String()}
	}
	adj := l.exits[d]
	if adj == nil {
		return nil
	}
	l.exits[d] = nil
	if !oneWay && adj.exits[d.Opposite()] == l {
		adj.exits[d.Opposite()] = nil
	}
	return nil
}

// Exit returns the adjacent location in direction d, or nil.
func (l *Location) Exit(d Direction) *Location {
	if !d.Valid() {
		return nil
	}
	return l.exits[d]
}

// Exits returns the directions that have an exit, in compass order.
func (l *Location) Exits() []Direction {
	var out []Direction
	for _, d := range Directions {
		if l.exits[d] != nil {
			out = append(out, d)
		}
	}
	return out
}

// AddPlace nests a sub-location. Names are unique within a location.
func (l *Location) AddPlace(p Place) error {
	if _, ok := l.SubLocation(p.Name()); ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePlace, p.Name())
	}
	l.places = append(l.places, p)
	return nil
}

// SubLocation finds a nested place by exact name.
func (l *Location) SubLocation(name string) (Place, bool) {
	for _, p := range l.places {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Places returns the nested places in declaration order.
func (l *Location) Places() []Place {
	return l.places
}

// AddMonster places a monster here.
func (l *Location) AddMonster(m *Entity) {
	m.location = l
	l.monsters = append(l.monsters, m)
}

// RemoveMonster removes a monster. It reports whether it was present.
func (l *Location) RemoveMonster(m *Entity) bool {
	for i, x := range l.monsters {
		if x == m {
			l.monsters = append(l.monsters[:i], l.monsters[i+1:]...)
			m.location = nil
			return true
		}
	}
	return false
}

// Monsters returns the monsters present.
func (l *Location) Monsters() []*Entity {
	return l.monsters
}
