package world

import "fmt"

// Direction is one of the four compass exits of a location.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every valid direction in display order.
var Directions = [...]Direction{North, South, East, West}

// InvalidDirectionError reports a direction outside {north, south, east, west}.
type InvalidDirectionError struct {
	Value string
}

func (e *InvalidDirectionError) Error() string {
	return fmt.Sprintf("direction not valid: %s", e.Value)
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Opposite returns the inverse direction (north↔south, east↔west).
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	panic(fmt.Sprintf("world: opposite of invalid direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection maps "north", "south", "east" or "west" to a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, &InvalidDirectionError{Value: s}
}
