package game

import (
	"fmt"
	"strings"
)

// Direction is one of the four grid directions.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// CW returns the direction 90 degrees clockwise from d.
func (d Direction) CW() Direction {
	return (d + 1) % 4
}

// CCW returns the direction 90 degrees counter-clockwise from d.
func (d Direction) CCW() Direction {
	return (d + 3) % 4
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection accepts full names or their first letter, in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "right", "r":
		return Right, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
