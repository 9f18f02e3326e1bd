package game

import (
	"context"
	"time"

	"gridsnake/game/types"
)

// EventKind distinguishes the two inputs the game understands.
type EventKind int

const (
	EventQuit EventKind = iota + 1
	EventKey
)

// Event is one discrete input. Direction is only meaningful for EventKey.
type Event struct {
	Kind      EventKind
	Direction types.Direction
}

func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

func KeyEvent(dir types.Direction) Event {
	return Event{Kind: EventKey, Direction: dir}
}

// InputSource yields the events queued since the previous call. Poll must not
// block; an empty batch is normal.
type InputSource interface {
	Poll() []Event
}

// View draws a snapshot. It must not retain or modify it.
type View interface {
	Render(Snapshot)
}

// Pacer blocks until the next tick boundary or until ctx is done.
type Pacer interface {
	Wait(ctx context.Context) error
}

// TickerPacer paces the loop with a time.Ticker.
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer targets tps ticks per second; non-positive values fall back
// to the default rate.
func NewTickerPacer(tps int) *TickerPacer {
	if tps <= 0 {
		tps = TPS
	}
	return &TickerPacer{ticker: time.NewTicker(time.Second / time.Duration(tps))}
}

func (p *TickerPacer) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}
