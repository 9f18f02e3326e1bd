package entity

import (
	"testing"

	"gridsnake/game/types"
)

func startBody() []types.Point {
	return []types.Point{{X: 200, Y: 200}, {X: 220, Y: 200}, {X: 240, Y: 200}}
}

func TestNewSnakeCopiesBody(t *testing.T) {
	body := startBody()
	s := NewSnake(body, types.Right)
	body[0] = types.Point{X: -1, Y: -1}
	if s.Body[0] != (types.Point{X: 200, Y: 200}) {
		t.Fatalf("snake shares caller's slice: %v", s.Body)
	}
	if s.GetHead() != (types.Point{X: 240, Y: 200}) {
		t.Fatalf("head = %v, want (240,200)", s.GetHead())
	}
}

func TestMoveAndRemoveTail(t *testing.T) {
	s := NewSnake(startBody(), types.Right)
	s.Move(s.NextHead(20))
	if s.Len() != 4 || s.GetHead() != (types.Point{X: 260, Y: 200}) {
		t.Fatalf("after move body = %v", s.Body)
	}
	s.RemoveTail()
	want := []types.Point{{X: 220, Y: 200}, {X: 240, Y: 200}, {X: 260, Y: 200}}
	for i, p := range want {
		if s.Body[i] != p {
			t.Fatalf("body = %v, want %v", s.Body, want)
		}
	}
}

func TestRemoveTailKeepsHead(t *testing.T) {
	s := NewSnake([]types.Point{{X: 0, Y: 0}}, types.Right)
	s.RemoveTail()
	if s.Len() != 1 {
		t.Fatalf("single cell snake shrank to %d", s.Len())
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	for _, cur := range []types.Direction{types.Up, types.Down, types.Left, types.Right} {
		s := NewSnake(startBody(), cur)
		if s.SetDirection(cur.Opposite()) {
			t.Errorf("reversal %v -> %v accepted", cur, cur.Opposite())
		}
		if s.Direction != cur {
			t.Errorf("direction changed to %v after rejected reversal from %v", s.Direction, cur)
		}
		if !s.SetDirection(cur) {
			t.Errorf("same direction %v rejected", cur)
		}
	}
	s := NewSnake(startBody(), types.Right)
	if s.SetDirection(types.Direction(0)) {
		t.Fatal("invalid direction accepted")
	}
}

func TestContainsIncludesTail(t *testing.T) {
	s := NewSnake(startBody(), types.Right)
	if !s.Contains(types.Point{X: 200, Y: 200}) {
		t.Fatal("tail not reported as occupied")
	}
	if s.Contains(types.Point{X: 260, Y: 200}) {
		t.Fatal("free cell reported as occupied")
	}
}
