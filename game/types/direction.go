package types

import "fmt"

// Direction is one of the four cardinal headings.
type Direction int

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the heading that would reverse into the neck.
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

// Delta converts d into a displacement of one block.
// Screen coordinates grow downwards, so Up decrements Y.
func (d Direction) Delta(block int) Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -block}
	case Down:
		return Point{X: 0, Y: block}
	case Left:
		return Point{X: -block, Y: 0}
	case Right:
		return Point{X: block, Y: 0}
	default:
		return Point{}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
