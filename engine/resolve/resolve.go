// Package resolve maps names typed by the player to monsters and places in
// the current location.
package resolve

import (
	"fmt"
	"strings"

	"github.com/nathoo/wayfarer/engine/world"
)

// NotFoundError indicates nothing here matched a name.
type NotFoundError struct {
	Kind string // "monster", "place"
	Name string
}

func (e *NotFoundError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("you don't see %q here", e.Name)
	}
	return fmt.Sprintf("there is no %s called %q here", e.Kind, e.Name)
}

// Monster finds a living monster in loc by exact name. With several monsters
// of the same name the first one listed is chosen.
func Monster(loc *world.Location, name string) (*world.Entity, error) {
	for _, m := range loc.Monsters() {
		if m.Name() == name && m.Alive() {
			return m, nil
		}
	}
	return nil, &NotFoundError{Kind: "monster", Name: name}
}

// Place finds a nested place in loc by exact name.
func Place(loc *world.Location, name string) (world.Place, error) {
	p, ok := loc.SubLocation(name)
	if !ok {
		return nil, &NotFoundError{Kind: "place", Name: name}
	}
	return p, nil
}

// MonsterNames lists the names of the living monsters in loc.
func MonsterNames(loc *world.Location) []string {
	var names []string
	for _, m := range loc.Monsters() {
		if m.Alive() {
			names = append(names, m.Name())
		}
	}
	return names
}

// PlaceNames lists the names of the places nested in loc.
func PlaceNames(loc *world.Location) []string {
	places := loc.Places()
	names := make([]string, 0, len(places))
	for _, p := range places {
		names = append(names, p.Name())
	}
	return names
}

// JoinNames renders names as "a, b and c".
func JoinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
