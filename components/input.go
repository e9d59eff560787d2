package components

import (
	"github.com/automoto/bloodduel/input"
	"github.com/yohamta/donburi"
)

// PlayerInputData stores the current and previous tick's normalized command
// for one actor. Edge-triggered actions compare the two.
type PlayerInputData struct {
	Current  input.Command
	Previous input.Command
}

// Push shifts Current into Previous and stores cmd as the new Current.
func (p *PlayerInputData) Push(cmd input.Command) {
	p.Previous = p.Current
	p.Current = cmd
}

// Edges returns the press/release view of the last two commands.
func (p *PlayerInputData) Edges() input.Edges {
	return input.Edges{Current: p.Current, Previous: p.Previous}
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
