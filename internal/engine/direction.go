package engine

import (
	"errors"
	"fmt"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all four move directions, used for stuck detection
// and by callers that iterate over candidate moves.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// ErrInvalidDirection is returned by Move when the direction is not one
// of the four defined constants. Passing one is a caller contract
// violation, not a normal game outcome.
var ErrInvalidDirection = errors.New("engine: invalid direction")

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// ParseDirection converts a direction name ("up", "down", "left",
// "right") into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}
