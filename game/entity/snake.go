package entity

import (
	"gridsnake/game/types"

	"golang.org/x/exp/slices"
)

// Snake is the ordered body of the player. Body[0] is the tail and the last
// element is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

func NewSnake(body []types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:      slices.Clone(body),
		Direction: dir,
	}
}

func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, newHead)
}

// RemoveTail drops the oldest cell. The last cell is never removed.
func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[1:]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether p is occupied by any body cell, tail included.
func (s *Snake) Contains(p types.Point) bool {
	return slices.Contains(s.Body, p)
}

// NextHead is the cell the head would enter on the next tick.
func (s *Snake) NextHead(block int) types.Point {
	return s.GetHead().Add(s.Direction.Delta(block))
}

// SetDirection changes heading unless dir would reverse into the neck.
// It reports whether the change was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

// Cells returns a copy of the body safe to hand to readers.
func (s *Snake) Cells() []types.Point {
	return slices.Clone(s.Body)
}
