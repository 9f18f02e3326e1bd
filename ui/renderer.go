package ui

import (
	"fmt"
	"image/color"

	"gridsnake/game"
)

// Score label origin in pixels.
const (
	scoreX = 10
	scoreY = 10
)

// Surface is the drawing sink a backend provides. Coordinates are pixels on
// the board; a frame is everything between Clear and Present.
type Surface interface {
	Clear(c color.RGBA)
	FillRect(x, y, w, h int, c color.RGBA)
	Text(s string, x, y int, c color.RGBA)
	Present()
}

// Renderer draws game snapshots onto a Surface.
type Renderer struct {
	surface Surface
	colors  game.Palette
}

func NewRenderer(surface Surface, colors game.Palette) *Renderer {
	return &Renderer{
		surface: surface,
		colors:  colors,
	}
}

// Render draws one frame. It reads the snapshot only, so drawing the same
// snapshot twice produces the same frame.
func (r *Renderer) Render(snap game.Snapshot) {
	r.surface.Clear(r.colors.Background)

	b := snap.BlockSize
	for _, p := range snap.Snake {
		r.surface.FillRect(p.X, p.Y, b, b, r.colors.Snake)
	}
	if snap.HasFood {
		r.surface.FillRect(snap.Food.X, snap.Food.Y, b, b, r.colors.Food)
	}

	r.surface.Text(ScoreLabel(snap.Score), scoreX, scoreY, r.colors.Text)
	r.surface.Present()
}

// ScoreLabel formats the score the way it is shown on screen and on exit.
func ScoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
