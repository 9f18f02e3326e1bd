//go:build !noraylib

package ui

import (
	"errors"
	"image/color"

	"gridsnake/game"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultDisplay is the backend main uses when -display is not given.
const DefaultDisplay = "window"

const (
	windowTitle = "Snake Game"
	fontSize    = 30
)

var windowKeys = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyRight: types.Right,
}

func init() {
	Register("window", openWindow)
}

// Window draws into a raylib window of the board's pixel size.
type Window struct {
	drawing bool
}

func openWindow(cfg game.Config) (Frontend, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), windowTitle)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib window failed to initialise")
	}
	return &Window{}, nil
}

func (w *Window) begin() {
	if !w.drawing {
		rl.BeginDrawing()
		w.drawing = true
	}
}

func (w *Window) Clear(c color.RGBA) {
	w.begin()
	rl.ClearBackground(c)
}

func (w *Window) FillRect(x, y, width, height int, c color.RGBA) {
	w.begin()
	rl.DrawRectangle(int32(x), int32(y), int32(width), int32(height), c)
}

func (w *Window) Text(s string, x, y int, c color.RGBA) {
	w.begin()
	rl.DrawText(s, int32(x), int32(y), fontSize, c)
}

// Present flips the frame. raylib also collects input here, so keys pressed
// during the following tick wait are seen by the next Poll.
func (w *Window) Present() {
	if w.drawing {
		rl.EndDrawing()
		w.drawing = false
	}
}

// Poll reports a close request or the arrow keys pressed since the last
// frame, in the order they were pressed.
func (w *Window) Poll() []game.Event {
	if rl.WindowShouldClose() {
		return []game.Event{game.QuitEvent()}
	}
	var events []game.Event
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if dir, ok := windowKeys[key]; ok {
			events = append(events, game.KeyEvent(dir))
		}
	}
	return events
}

func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}
