package game

import (
	"errors"
	"flag"
	"fmt"
	"image/color"

	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Board and timing constants.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	BlockSize    = 20
	TPS          = 10
)

// Palette holds the colours used to draw a frame.
type Palette struct {
	Background color.RGBA
	Snake      color.RGBA
	Food       color.RGBA
	Text       color.RGBA
}

// Config is everything a Game needs at construction.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	BlockSize    int
	TPS          int

	InitialSnake     []types.Point
	InitialDirection types.Direction

	Colors Palette

	// MaxFoodAttempts bounds random sampling before PlaceFood scans for
	// free cells. Zero selects manager.DefaultFoodAttempts.
	MaxFoodAttempts int

	// Seed drives food placement. Zero seeds from the clock.
	Seed int64
}

// DefaultConfig returns the standard 40x30 board.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      ScreenWidth,
		ScreenHeight:     ScreenHeight,
		BlockSize:        BlockSize,
		TPS:              TPS,
		InitialSnake:     []types.Point{{X: 200, Y: 200}, {X: 220, Y: 200}, {X: 240, Y: 200}},
		InitialDirection: types.Right,
		Colors: Palette{
			Background: color.RGBA{A: 255},
			Snake:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
			Food:       color.RGBA{R: 255, A: 255},
			Text:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		},
		MaxFoodAttempts: manager.DefaultFoodAttempts,
	}
}

// Bind registers the runtime-tunable fields on fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed for food placement (0 = time based)")
}

// Grid returns the board bounds.
func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.ScreenWidth, Height: c.ScreenHeight}
}

// Validate rejects configurations the game loop cannot run.
func (c Config) Validate() error {
	if c.BlockSize <= 0 {
		return fmt.Errorf("block size must be positive, got %d", c.BlockSize)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.ScreenWidth%c.BlockSize != 0 || c.ScreenHeight%c.BlockSize != 0 {
		return fmt.Errorf("screen size %dx%d is not a multiple of block size %d", c.ScreenWidth, c.ScreenHeight, c.BlockSize)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TPS)
	}
	if c.MaxFoodAttempts < 0 {
		return fmt.Errorf("max food attempts must not be negative, got %d", c.MaxFoodAttempts)
	}
	if !c.InitialDirection.Valid() {
		return fmt.Errorf("invalid initial direction %v", c.InitialDirection)
	}
	if err := c.validateSnake(); err != nil {
		return fmt.Errorf("initial snake: %w", err)
	}
	return nil
}

func (c Config) validateSnake() error {
	body := c.InitialSnake
	if len(body) == 0 {
		return errors.New("must have at least one cell")
	}

	grid := c.Grid()
	seen := make(map[types.Point]bool, len(body))
	for i, p := range body {
		if !grid.Contains(p) {
			return fmt.Errorf("cell %d %v is off the board", i, p)
		}
		if p.X%c.BlockSize != 0 || p.Y%c.BlockSize != 0 {
			return fmt.Errorf("cell %d %v is not aligned to block size %d", i, p, c.BlockSize)
		}
		if seen[p] {
			return fmt.Errorf("cell %d %v overlaps the body", i, p)
		}
		seen[p] = true
		if i > 0 && !c.adjacent(body[i-1], p) {
			return fmt.Errorf("cells %v and %v are not adjacent", body[i-1], p)
		}
	}

	if len(body) > 1 {
		head := body[len(body)-1]
		if head.Add(c.InitialDirection.Delta(c.BlockSize)) == body[len(body)-2] {
			return fmt.Errorf("direction %v reverses into the neck", c.InitialDirection)
		}
	}
	return nil
}

func (c Config) adjacent(a, b types.Point) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == c.BlockSize && (dx == 0 || dy == 0)
}
