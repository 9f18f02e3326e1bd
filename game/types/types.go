package types

import "fmt"

// Point is one grid cell, stored in pixels and aligned to the block size.
type Point struct {
	X, Y int
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the board dimensions in pixels
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the board size in grid units.
func (g Grid) Cells(block int) (cols, rows int) {
	return g.Width / block, g.Height / block
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return fmt.Sprintf("CollisionType(%d)", int(c))
	}
}

// State is the lifecycle of a game.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Cause records why a game reached Terminated.
type Cause int

const (
	CauseNone Cause = iota
	CauseQuit
	CauseWall
	CauseSelf
)

// CauseOf maps a collision onto the cause that ends the game.
func CauseOf(c CollisionType) Cause {
	switch c {
	case WallCollision:
		return CauseWall
	case SelfCollision:
		return CauseSelf
	default:
		return CauseNone
	}
}

// Collision reports whether the game ended by hitting something rather than
// by a quit request.
func (c Cause) Collision() bool {
	return c == CauseWall || c == CauseSelf
}

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseQuit:
		return "quit"
	case CauseWall:
		return "boundary violation"
	case CauseSelf:
		return "self collision"
	default:
		return fmt.Sprintf("Cause(%d)", int(c))
	}
}
