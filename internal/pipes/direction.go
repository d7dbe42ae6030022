// Package pipes implements the screensaver animation: colored box-drawing
// trails that move across the screen, turn at random, and wrap or bounce at
// the edges. The simulation is pure and deterministic for a given seed, with
// no dependency on the terminal platform.
package pipes

// Direction represents a pipe's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// dx returns the horizontal movement delta for the direction.
func (d Direction) dx() int {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	default:
		return 0
	}
}

// dy returns the vertical movement delta for the direction.
func (d Direction) dy() int {
	switch d {
	case DirUp:
		return -1
	case DirDown:
		return 1
	default:
		return 0
	}
}

// Opposite returns the 180° reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Perpendiculars returns the two directions at 90° to this one.
func (d Direction) Perpendiculars() [2]Direction {
	if d == DirLeft || d == DirRight {
		return [2]Direction{DirUp, DirDown}
	}
	return [2]Direction{DirLeft, DirRight}
}

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
