//go:build noraylib

package ui

import "gridsnake/game"

// DefaultDisplay is the backend main uses when -display is not given.
const DefaultDisplay = "terminal"

func init() {
	Register("window", func(game.Config) (Frontend, error) {
		return nil, ErrWindowUnavailable
	})
}
