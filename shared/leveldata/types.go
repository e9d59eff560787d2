// Package leveldata provides arena parsing for the simulation and the relay.
// It has no dependencies on donburi or resolv, pure data only.
package leveldata

import (
	"errors"

	cfg "github.com/automoto/bloodduel/config"
)

// ErrNoArena is returned when a map holds no platforms to fight on.
var ErrNoArena = errors.New("leveldata: arena has no platforms")

// Arena holds all collision-relevant data of one arena.
type Arena struct {
	Name   string
	Width  float64
	Height float64

	// Platforms in map order; the first one is treated as the ground.
	Platforms []cfg.Rect

	// Spawns for actor 1 and actor 2
	Spawns [2]cfg.Point

	PowerupZone cfg.Rect
}

// DefaultArena returns the built-in arena from the tuning tables.
func DefaultArena() *Arena {
	platforms := make([]cfg.Rect, len(cfg.Arena.Platforms))
	copy(platforms, cfg.Arena.Platforms)
	return &Arena{
		Name:        "default",
		Width:       cfg.Arena.Width,
		Height:      cfg.Arena.Height,
		Platforms:   platforms,
		Spawns:      cfg.Arena.Spawns,
		PowerupZone: cfg.Arena.PowerupZone,
	}
}
