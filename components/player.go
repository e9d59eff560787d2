package components

import (
	cfg "github.com/automoto/bloodduel/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	ID          int // 1 or 2
	FacingRight bool
	Blocking    bool

	// Shadow actors mirror a remote peer and are never simulated locally.
	Shadow bool
}

// Facing returns the facing direction as a multiplier.
func (p *PlayerData) Facing() float64 {
	if p.FacingRight {
		return cfg.DirectionRight
	}
	return cfg.DirectionLeft
}

var Player = donburi.NewComponentType[PlayerData]()
