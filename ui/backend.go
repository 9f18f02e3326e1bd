package ui

import (
	"errors"
	"fmt"
	"sort"

	"gridsnake/game"
)

// ErrWindowUnavailable is returned when the binary was built without the
// raylib window backend.
var ErrWindowUnavailable = errors.New("window display requires a build without the noraylib tag")

// Frontend is an open display: something to draw on and something to read
// input from.
type Frontend interface {
	Surface
	game.InputSource
	Close() error
}

// Opener creates a Frontend sized for cfg.
type Opener func(cfg game.Config) (Frontend, error)

var backends = map[string]Opener{}

// Register adds a display backend under the provided name.
func Register(name string, o Opener) {
	if name == "" || o == nil {
		return
	}
	backends[name] = o
}

// Backends lists the registered backend names in order.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open starts the named backend.
func Open(name string, cfg game.Config) (Frontend, error) {
	o, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown display %q (have %v)", name, Backends())
	}
	f, err := o(cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s display: %w", name, err)
	}
	return f, nil
}
