package ui

import (
	"fmt"
	"image/color"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

func init() {
	Register("terminal", openTerminal)
}

// Terminal draws the board in a character terminal. One grid cell is two
// columns wide and one row high so cells look roughly square.
type Terminal struct {
	screen tcell.Screen
	block  int
	bg     tcell.Color
}

func openTerminal(cfg game.Config) (Frontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminal(screen, cfg)
}

// NewTerminal initialises screen and wraps it. The caller owns Close.
func NewTerminal(screen tcell.Screen, cfg game.Config) (*Terminal, error) {
	if cfg.BlockSize <= 0 {
		return nil, fmt.Errorf("block size must be positive, got %d", cfg.BlockSize)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return &Terminal{
		screen: screen,
		block:  cfg.BlockSize,
		bg:     tcellColor(cfg.Colors.Background),
	}, nil
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cell maps a pixel position to the terminal column and row holding it.
func (t *Terminal) cell(x, y int) (col, row int) {
	return x / t.block * 2, y / t.block
}

func (t *Terminal) Clear(c color.RGBA) {
	t.bg = tcellColor(c)
	t.screen.Fill(' ', tcell.StyleDefault.Background(t.bg))
}

func (t *Terminal) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	style := tcell.StyleDefault.Background(tcellColor(c))
	col0, row0 := t.cell(x, y)
	col1, row1 := t.cell(x+w-1, y+h-1)
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1+1; col++ {
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (t *Terminal) Text(s string, x, y int, c color.RGBA) {
	style := tcell.StyleDefault.Foreground(tcellColor(c)).Background(t.bg)
	col, row := t.cell(x, y)
	for _, r := range s {
		t.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

func (t *Terminal) Present() {
	t.screen.Show()
}

// Poll drains the events already queued by the terminal without blocking.
func (t *Terminal) Poll() []game.Event {
	var events []game.Event
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if e, ok := terminalKey(ev); ok {
				events = append(events, e)
			}
		case *tcell.EventResize:
			t.screen.Sync()
		case nil:
			return events
		}
	}
	return events
}

func terminalKey(ev *tcell.EventKey) (game.Event, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyEvent(types.Up), true
	case tcell.KeyDown:
		return game.KeyEvent(types.Down), true
	case tcell.KeyLeft:
		return game.KeyEvent(types.Left), true
	case tcell.KeyRight:
		return game.KeyEvent(types.Right), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.QuitEvent(), true
	case tcell.KeyRune:
		if r := ev.Rune(); r == 'q' || r == 'Q' {
			return game.QuitEvent(), true
		}
	}
	return game.Event{}, false
}

func (t *Terminal) Close() error {
	t.screen.Fini()
	return nil
}
