package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// DefaultFoodAttempts bounds rejection sampling before falling back to a scan
// of the free cells.
const DefaultFoodAttempts = 64

type FoodManager struct {
	grid         types.Grid
	block        int
	attempts     int
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, block, attempts int, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	if attempts <= 0 {
		attempts = DefaultFoodAttempts
	}
	return &FoodManager{
		grid:         grid,
		block:        block,
		attempts:     attempts,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// PlaceFood picks a uniformly random free cell. It samples the whole board a
// bounded number of times and then draws from the complement of the snake, so
// it terminates even when the board is almost full. ok is false only when the
// snake covers every cell.
func (fm *FoodManager) PlaceFood(snake *entity.Snake) (food types.Point, ok bool) {
	cols, rows := fm.grid.Cells(fm.block)
	if cols <= 0 || rows <= 0 {
		return types.Point{}, false
	}

	for i := 0; i < fm.attempts; i++ {
		food = types.Point{
			X: fm.rng.Intn(cols) * fm.block,
			Y: fm.rng.Intn(rows) * fm.block,
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}

	free := fm.FreeCells(snake)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

// FreeCells lists every board cell not covered by the snake, row by row.
func (fm *FoodManager) FreeCells(snake *entity.Snake) []types.Point {
	cols, rows := fm.grid.Cells(fm.block)
	occupied := make(map[types.Point]struct{}, snake.Len())
	for _, p := range snake.Body {
		occupied[p] = struct{}{}
	}

	free := make([]types.Point, 0, max(cols*rows-len(occupied), 0))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := types.Point{X: x * fm.block, Y: y * fm.block}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	return free
}
