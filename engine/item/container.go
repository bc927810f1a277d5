package item

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNotFound is returned when a named item is not in a container.
	ErrNotFound = errors.New("item not found")
	// ErrDuplicateName is returned when a container already holds an item with the same name.
	ErrDuplicateName = errors.New("an item with that name is already there")
	// ErrNotOwned is returned when removing an item reference the container does not hold.
	ErrNotOwned = errors.New("item is not in this container")
)

// Container is an unordered collection of items keyed by unique name.
// The zero value is not usable; create one with NewContainer.
type Container struct {
	items map[string]*Item
}

// NewContainer returns an empty container holding the given items.
// Items with duplicate names after the first are ignored.
func NewContainer(items ...*Item) *Container {
	c := &Container{items: make(map[string]*Item, len(items))}
	for _, it := range items {
		_ = c.Add(it)
	}
	return c
}

// Add inserts an item. It fails if an item with that name is already held.
func (c *Container) Add(it *Item) error {
	if _, ok := c.items[it.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, it.Name())
	}
	c.items[it.Name()] = it
	return nil
}

// Remove removes the given item reference.
func (c *Container) Remove(it *Item) error {
	held, ok := c.items[it.Name()]
	if !ok || held != it {
		return fmt.Errorf("%w: %s", ErrNotOwned, it.Name())
	}
	delete(c.items, it.Name())
	return nil
}

// RemoveByName removes and returns the item with the given name.
func (c *Container) RemoveByName(name string) (*Item, error) {
	it, ok := c.items[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(c.items, name)
	return it, nil
}

// Get returns the item with the given name.
func (c *Container) Get(name string) (*Item, bool) {
	it, ok := c.items[name]
	return it, ok
}

// Contains reports whether this exact item instance is held.
func (c *Container) Contains(it *Item) bool {
	held, ok := c.items[it.Name()]
	return ok && held == it
}

// Has reports whether an item with the given name is held.
func (c *Container) Has(name string) bool {
	_, ok := c.items[name]
	return ok
}

// Count returns the number of items held.
func (c *Container) Count() int {
	return len(c.items)
}

// Weight returns the total weight of all items held.
func (c *Container) Weight() int {
	total := 0
	for _, it := range c.items {
		total += it.Weight()
	}
	return total
}

// Items returns the held items sorted by name.
func (c *Container) Items() []*Item {
	out := make([]*Item, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name() < out[b].Name() })
	return out
}

// Names returns the held item names sorted.
func (c *Container) Names() []string {
	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Transfer moves an item from one container to another. Both preconditions
// are checked before anything changes, so a failed transfer mutates nothing.
func Transfer(from, to *Container, it *Item) error {
	if !from.Contains(it) {
		return fmt.Errorf("%w: %s", ErrNotOwned, it.Name())
	}
	if to.Has(it.Name()) {
		return fmt.Errorf("%w: %s", ErrDuplicateName, it.Name())
	}
	delete(from.items, it.Name())
	to.items[it.Name()] = it
	return nil
}
