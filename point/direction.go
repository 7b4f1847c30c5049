// SPDX-License-Identifier: MIT

package point

import "fmt"

// Direction is one of the four cardinal directions under the screen
// convention (Up decreases Y).
type Direction int

const (
	// Up moves toward Y-1.
	Up Direction = iota
	// Down moves toward Y+1.
	Down
	// Left moves toward X-1.
	Left
	// Right moves toward X+1.
	Right
)

// Directions lists the cardinal directions in Neighbors order.
var Directions = [4]Direction{Up, Down, Left, Right}

// offsets are indexed by Direction as (dx, dy).
var offsets = [4][2]int{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

// Offset returns the (dx, dy) unit step for d, or (0, 0) for an unknown
// direction.
func (d Direction) Offset() (dx, dy int) {
	if d < Up || d > Right {
		return 0, 0
	}
	return offsets[d][0], offsets[d][1]
}

// Opposite returns the direction pointing the other way. Unknown values are
// returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// TurnRight returns d rotated 90° clockwise as seen on screen.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

// TurnLeft returns d rotated 90° counter-clockwise as seen on screen.
func (d Direction) TurnLeft() Direction {
	return d.TurnRight().Opposite()
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
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}
