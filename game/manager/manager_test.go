package manager

import (
	"testing"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

const block = 20

func newFood(grid types.Grid, attempts int, seed uint64) *FoodManager {
	return NewFoodManager(grid, block, attempts, rand.New(rand.NewSource(seed)), NewCollisionManager(grid))
}

func TestCheckCollision(t *testing.T) {
	grid := types.Grid{Width: 800, Height: 600}
	cm := NewCollisionManager(grid)
	snake := entity.NewSnake([]types.Point{{X: 200, Y: 200}, {X: 220, Y: 200}, {X: 240, Y: 200}}, types.Right)

	tests := []struct {
		name string
		pos  types.Point
		want types.CollisionType
	}{
		{"free cell", types.Point{X: 260, Y: 200}, types.NoCollision},
		{"left wall", types.Point{X: -20, Y: 200}, types.WallCollision},
		{"right wall", types.Point{X: 800, Y: 200}, types.WallCollision},
		{"top wall", types.Point{X: 200, Y: -20}, types.WallCollision},
		{"bottom wall", types.Point{X: 200, Y: 600}, types.WallCollision},
		{"body", types.Point{X: 220, Y: 200}, types.SelfCollision},
		{"tail", types.Point{X: 200, Y: 200}, types.SelfCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.CheckCollision(tt.pos, snake); got != tt.want {
				t.Fatalf("CheckCollision(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestPlaceFoodAvoidsSnake(t *testing.T) {
	grid := types.Grid{Width: 100, Height: 100}
	snake := entity.NewSnake([]types.Point{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 40, Y: 0}, {X: 60, Y: 0}, {X: 80, Y: 0},
		{X: 80, Y: 20}, {X: 60, Y: 20}, {X: 40, Y: 20},
	}, types.Left)
	fm := newFood(grid, DefaultFoodAttempts, 7)

	for i := 0; i < 500; i++ {
		food, ok := fm.PlaceFood(snake)
		if !ok {
			t.Fatal("no food placed on a board with free cells")
		}
		if snake.Contains(food) {
			t.Fatalf("food %v placed on snake", food)
		}
		if !grid.Contains(food) || food.X%block != 0 || food.Y%block != 0 {
			t.Fatalf("food %v is not an aligned board cell", food)
		}
	}
}

func TestPlaceFoodFallsBackToFreeCells(t *testing.T) {
	grid := types.Grid{Width: 60, Height: 60}
	// Every cell but (40,40) is covered.
	snake := entity.NewSnake([]types.Point{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 40, Y: 0},
		{X: 40, Y: 20}, {X: 20, Y: 20}, {X: 0, Y: 20},
		{X: 0, Y: 40}, {X: 20, Y: 40},
	}, types.Right)

	// A single sampling attempt forces the complement scan on most seeds.
	for seed := uint64(1); seed <= 20; seed++ {
		fm := newFood(grid, 1, seed)
		food, ok := fm.PlaceFood(snake)
		if !ok || food != (types.Point{X: 40, Y: 40}) {
			t.Fatalf("seed %d: PlaceFood = %v,%v, want (40,40),true", seed, food, ok)
		}
	}
}

func TestPlaceFoodFullBoard(t *testing.T) {
	grid := types.Grid{Width: 40, Height: 40}
	snake := entity.NewSnake([]types.Point{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20},
	}, types.Up)
	fm := newFood(grid, 4, 1)
	if food, ok := fm.PlaceFood(snake); ok {
		t.Fatalf("placed food %v on a full board", food)
	}
	if free := fm.FreeCells(snake); len(free) != 0 {
		t.Fatalf("FreeCells = %v, want none", free)
	}
}

func TestFreeCellsOrder(t *testing.T) {
	grid := types.Grid{Width: 40, Height: 40}
	snake := entity.NewSnake([]types.Point{{X: 20, Y: 0}}, types.Right)
	fm := newFood(grid, 1, 1)
	want := []types.Point{{X: 0, Y: 0}, {X: 0, Y: 20}, {X: 20, Y: 20}}
	got := fm.FreeCells(snake)
	if len(got) != len(want) {
		t.Fatalf("FreeCells = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FreeCells = %v, want %v", got, want)
		}
	}
}

func TestStateManagerLifecycle(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start
	sm := newStateManager(func() time.Time { return now })

	if !sm.Running() || sm.State() != types.Running {
		t.Fatal("new state manager is not running")
	}
	if sm.Session().ID == "" {
		t.Fatal("session has no id")
	}

	sm.AddPoint()
	sm.AddPoint()
	sm.Tick()
	now = start.Add(3 * time.Second)

	if !sm.Terminate(types.CauseWall) {
		t.Fatal("first Terminate reported no transition")
	}
	if sm.Terminate(types.CauseQuit) {
		t.Fatal("Terminated is not absorbing")
	}
	sm.AddPoint()
	sm.Tick()

	s := sm.Session()
	if s.Score != 2 || s.Ticks != 1 {
		t.Fatalf("session score=%d ticks=%d, want 2 and 1", s.Score, s.Ticks)
	}
	if s.Cause != types.CauseWall {
		t.Fatalf("cause = %v, want wall", s.Cause)
	}
	if s.Duration() != 3*time.Second {
		t.Fatalf("duration = %v, want 3s", s.Duration())
	}
}
