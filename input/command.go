// Package input turns device state into the normalized per-tick command an
// actor consumes. Nothing here knows about physical keys or gamepads beyond
// the opaque control names in the bindings.
package input

import (
	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/shared/gamemath"
)

// Command is one actor's intent for a single tick.
type Command struct {
	X, Y       float64 // [-1, 1], y grows downward
	Jump       bool
	Dash       bool
	Attack     bool
	Block      bool
	Item       bool
	SwitchItem bool
}

// Normalize returns a copy with both axes clamped to [-1, 1]. NaN axes read
// as centered.
func (c Command) Normalize() Command {
	c.X = gamemath.ClampAxis(c.X)
	c.Y = gamemath.ClampAxis(c.Y)
	return c
}

// Pressed reports the held state of a button action.
func (c Command) Pressed(a cfg.ActionID) bool {
	switch a {
	case cfg.ActionJump:
		return c.Jump
	case cfg.ActionDash:
		return c.Dash
	case cfg.ActionAttack:
		return c.Attack
	case cfg.ActionBlock:
		return c.Block
	case cfg.ActionItem:
		return c.Item
	case cfg.ActionSwitchItem:
		return c.SwitchItem
	}
	return false
}

// Set updates the held state of a button action. Unknown actions are ignored.
func (c *Command) Set(a cfg.ActionID, pressed bool) {
	switch a {
	case cfg.ActionJump:
		c.Jump = pressed
	case cfg.ActionDash:
		c.Dash = pressed
	case cfg.ActionAttack:
		c.Attack = pressed
	case cfg.ActionBlock:
		c.Block = pressed
	case cfg.ActionItem:
		c.Item = pressed
	case cfg.ActionSwitchItem:
		c.SwitchItem = pressed
	}
}

// Edges compares two consecutive commands.
type Edges struct {
	Current  Command
	Previous Command
}

// JustPressed reports a press on this tick.
func (e Edges) JustPressed(a cfg.ActionID) bool {
	return e.Current.Pressed(a) && !e.Previous.Pressed(a)
}

// JustReleased reports a release on this tick.
func (e Edges) JustReleased(a cfg.ActionID) bool {
	return !e.Current.Pressed(a) && e.Previous.Pressed(a)
}
