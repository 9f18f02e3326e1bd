package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gridsnake/game"
	"gridsnake/ui"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridsnake: ")

	cfg := game.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	display := flag.String("display", ui.DefaultDisplay, fmt.Sprintf("display backend %v", ui.Backends()))
	flag.Parse()

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	log.Printf("session %s starting on %s display", g.Session().ID, *display)

	front, err := ui.Open(*display, cfg)
	if err != nil {
		if errors.Is(err, ui.ErrWindowUnavailable) {
			log.Fatalf("%v: rebuild without -tags noraylib or run with -display=terminal", err)
		}
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pacer := game.NewTickerPacer(cfg.TPS)
	defer pacer.Stop()

	session := g.Run(ctx, front, ui.NewRenderer(front, cfg.Colors), pacer)
	if err := front.Close(); err != nil {
		log.Printf("close display: %v", err)
	}

	log.Printf("session %s ended by %s after %d ticks in %s",
		session.ID, session.Cause, session.Ticks, session.Duration().Round(time.Millisecond))

	// A quit leaves without reporting the score.
	if session.Cause.Collision() {
		fmt.Println(ui.ScoreLabel(session.Score))
	}
}
