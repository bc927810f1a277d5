package places

import (
	"context"
	"fmt"

	"github.com/nathoo/wayfarer/engine/prompt"
	"github.com/nathoo/wayfarer/engine/world"
)

// LeaveCity is the exact token that leaves a city.
const LeaveCity = "leave city"

// City holds buildings the guest can walk into by name.
type City struct {
	base
	buildings []world.Place
}

// NewCity creates a city.
func NewCity(name, description, greeting string, buildings ...world.Place) *City {
	return &City{base: base{name: name, description: description, greeting: greeting}, buildings: buildings}
}

func (c *City) Kind() string { return KindCity }

// Buildings returns the buildings in declaration order.
func (c *City) Buildings() []world.Place { return c.buildings }

// Building finds a building by exact name.
func (c *City) Building(name string) (world.Place, bool) {
	for _, b := range c.buildings {
		if b.Name() == name {
			return b, true
		}
	}
	return nil, false
}

// Enter lists the buildings and lets the guest walk into them until they
// type "leave city".
func (c *City) Enter(ctx context.Context, guest *world.Entity, io prompt.IO) error {
	c.arrive(io, KindCity, guest)

	for {
		if len(c.buildings) == 0 {
			io.Say("There is nowhere to go in here.")
		} else {
			io.Say("You have found the following:")
			names := make([]string, 0, len(c.buildings))
			for _, b := range c.buildings {
				names = append(names, fmt.Sprintf("%s (%s)", b.Name(), Label(b.Kind())))
			}
			io.Say(bulleted(names))
		}
		io.Sayf("To go to a building type its name. Otherwise, type '%s'.", LeaveCity)

		choice, err := io.Ask(ctx, "Where would you like to go?")
		if err != nil {
			return err
		}
		if choice == LeaveCity {
			c.leave(io, KindCity)
			return nil
		}
		b, ok := c.Building(choice)
		if !ok {
			io.Fail("I did not recognize %s. Try again.", choice)
			continue
		}
		if err := b.Enter(ctx, guest, io); err != nil {
			return err
		}
		io.Sayf("You are now back in %s.", c.name)
	}
}
