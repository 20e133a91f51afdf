package types

import (
	"fmt"
	"strings"
)

// Direction is one of the four cardinal directions
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in sampling order.
var Directions = [4]Direction{Up, Left, Right, Down}

// Delta converts a Direction into a displacement. Y grows upwards.
func (d Direction) Delta() Key {
	switch d {
	case Up:
		return Key{X: 0, Y: 1}
	case Down:
		return Key{X: 0, Y: -1}
	case Left:
		return Key{X: -1, Y: 0}
	case Right:
		return Key{X: 1, Y: 0}
	default:
		panic(fmt.Sprintf("invalid direction %d", int(d)))
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection is the inverse of Direction.String, case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
