package world

import (
	"context"
	"sync"
	"time"

	"github.com/automoto/bloodduel/input"
)

// CommandSource supplies the commands for the next tick.
type CommandSource interface {
	Commands(w *World) map[int]input.Command
}

// CommandSourceFunc adapts a function to CommandSource.
type CommandSourceFunc func(w *World) map[int]input.Command

func (f CommandSourceFunc) Commands(w *World) map[int]input.Command { return f(w) }

// Loop drives a World at a fixed tick rate.
type Loop struct {
	world    *World
	source   CommandSource
	tickRate int

	before []func(*World)
	after  []func(*World)

	stopOnce sync.Once
	stopChan chan struct{}
}

func NewLoop(w *World, tickRate int, source CommandSource) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		world:    w,
		source:   source,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// BeforeTick registers fn to run ahead of every tick, e.g. to drain network
// input.
func (l *Loop) BeforeTick(fn func(*World)) { l.before = append(l.before, fn) }

// AfterTick registers fn to run after every tick, e.g. to flush outbound
// messages.
func (l *Loop) AfterTick(fn func(*World)) { l.after = append(l.after, fn) }

// Step runs a single tick synchronously.
func (l *Loop) Step() {
	for _, fn := range l.before {
		fn(l.world)
	}
	var cmds map[int]input.Command
	if l.source != nil {
		cmds = l.source.Commands(l.world)
	}
	l.world.Tick(cmds)
	for _, fn := range l.after {
		fn(l.world)
	}
}

// Run ticks until ctx is done or Stop is called.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	l.world.log.WithField("rate", l.tickRate).Info("game loop started")

	for {
		select {
		case <-ctx.Done():
			l.world.log.Info("game loop stopped")
			return ctx.Err()
		case <-l.stopChan:
			l.world.log.Info("game loop stopped")
			return nil
		case <-ticker.C:
			l.Step()
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}
