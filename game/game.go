package game

import (
	"context"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// Snapshot is a detached copy of everything needed to draw one frame.
type Snapshot struct {
	Grid      types.Grid
	BlockSize int
	Snake     []types.Point
	Direction types.Direction
	Food      types.Point
	HasFood   bool
	Score     int
	State     types.State
}

// Game owns all mutable state of one snake game. It is not safe for
// concurrent use; Run drives it from a single goroutine.
type Game struct {
	cfg   Config
	grid  types.Grid
	snake *entity.Snake

	food    types.Point
	hasFood bool

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// New validates cfg and returns a running game with food placed.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(uint64(seed)))

	grid := cfg.Grid()
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		cfg:          cfg,
		grid:         grid,
		snake:        entity.NewSnake(cfg.InitialSnake, cfg.InitialDirection),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, cfg.BlockSize, cfg.MaxFoodAttempts, rng, collisionMgr),
		stateMgr:     manager.NewStateManager(),
	}
	g.food, g.hasFood = g.PlaceFood()
	return g, nil
}

// PlaceFood picks a free cell for the next food item without installing it.
func (g *Game) PlaceFood() (types.Point, bool) {
	return g.foodMgr.PlaceFood(g.snake)
}

// HandleEvents applies one batch of input in order. A quit ends the game and
// drops the rest of the batch. Each key is checked against the direction left
// by the key before it, so the last accepted key wins. It reports whether the
// game is still running.
func (g *Game) HandleEvents(events []Event) bool {
	if !g.stateMgr.Running() {
		return false
	}
	for _, ev := range events {
		switch ev.Kind {
		case EventQuit:
			g.Quit()
			return false
		case EventKey:
			g.snake.SetDirection(ev.Direction)
		}
	}
	return true
}

// Quit terminates the game on an external request.
func (g *Game) Quit() {
	g.stateMgr.Terminate(types.CauseQuit)
}

// Advance moves the snake one block. A wall or body hit terminates the game
// and is returned; eating grows the snake and scores a point. Once the game
// has terminated Advance does nothing.
func (g *Game) Advance() types.CollisionType {
	if !g.stateMgr.Running() {
		return types.NoCollision
	}

	newHead := g.snake.NextHead(g.cfg.BlockSize)
	if c := g.collisionMgr.CheckCollision(newHead, g.snake); c != types.NoCollision {
		g.stateMgr.Terminate(types.CauseOf(c))
		return c
	}

	g.snake.Move(newHead)
	if g.hasFood && g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.stateMgr.AddPoint()
		g.food, g.hasFood = g.PlaceFood()
	} else {
		g.snake.RemoveTail()
	}
	g.stateMgr.Tick()
	return types.NoCollision
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:      g.grid,
		BlockSize: g.cfg.BlockSize,
		Snake:     g.snake.Cells(),
		Direction: g.snake.Direction,
		Food:      g.food,
		HasFood:   g.hasFood,
		Score:     g.stateMgr.Score(),
		State:     g.stateMgr.State(),
	}
}

// Running reports whether the game has not terminated yet.
func (g *Game) Running() bool {
	return g.stateMgr.Running()
}

// Score is the number of food items eaten.
func (g *Game) Score() int {
	return g.stateMgr.Score()
}

// Direction is the heading the next Advance will use.
func (g *Game) Direction() types.Direction {
	return g.snake.Direction
}

// Session returns the summary of this game so far.
func (g *Game) Session() manager.Session {
	return g.stateMgr.Session()
}

// Run loops input, advance, render and pacing until the game terminates.
// Cancelling ctx is treated as a quit request and takes effect before the
// next advance.
func (g *Game) Run(ctx context.Context, in InputSource, view View, pacer Pacer) manager.Session {
	for g.Running() {
		if ctx.Err() != nil {
			g.Quit()
			break
		}
		if !g.HandleEvents(in.Poll()) {
			break
		}
		if g.Advance() != types.NoCollision {
			break
		}
		view.Render(g.Snapshot())
		// A cancelled wait is picked up at the top of the loop.
		_ = pacer.Wait(ctx)
	}
	return g.Session()
}
