package input

import (
	"math"

	cfg "github.com/automoto/bloodduel/config"
)

// Device is a polled input source. Implementations map control names from
// the bindings to whatever hardware or script backs them.
type Device interface {
	Axis(id cfg.ControlID) float64
	Button(id cfg.ControlID) bool
}

// Mapper turns a device into commands using one control scheme.
type Mapper struct {
	Scheme   cfg.ControlScheme
	DeadZone float64
}

// NewMapper returns a mapper for a built-in scheme. Unknown ids fall back to
// the WASD scheme.
func NewMapper(id cfg.ControlSchemeID) *Mapper {
	scheme, ok := cfg.Input.Schemes[id]
	if !ok {
		scheme = cfg.Input.Schemes[cfg.ControlSchemeWASD]
	}
	return &Mapper{Scheme: scheme, DeadZone: cfg.Input.AnalogDeadzone}
}

// Command samples dev and returns the normalized command. Digital direction
// controls override the analog stick, as a d-pad does.
func (m *Mapper) Command(dev Device) Command {
	var cmd Command
	if dev == nil {
		return cmd
	}

	cmd.X = m.axis(dev, m.Scheme.X)
	cmd.Y = m.axis(dev, m.Scheme.Y)

	for action, controls := range m.Scheme.Buttons {
		for _, c := range controls {
			if dev.Button(c) {
				cmd.Set(action, true)
				break
			}
		}
	}

	if m.Scheme.BlockOnDown && cmd.Y > cfg.Melee.DirectiveThresh {
		cmd.Block = true
	}

	return cmd.Normalize()
}

func (m *Mapper) axis(dev Device, b cfg.AxisBinding) float64 {
	var v float64
	if b.Analog != "" {
		a := dev.Axis(b.Analog)
		if !math.IsNaN(a) && math.Abs(a) > m.DeadZone {
			v = a
		}
	}
	for _, c := range b.Negative {
		if dev.Button(c) {
			v = -1
		}
	}
	for _, c := range b.Positive {
		if dev.Button(c) {
			v = 1
		}
	}
	return v
}

// StaticDevice is a Device backed by plain maps. Scripted inputs and tests
// use it; a real collaborator fills it from its event loop each frame.
type StaticDevice struct {
	Axes    map[cfg.ControlID]float64
	Buttons map[cfg.ControlID]bool
}

// NewStaticDevice returns an empty device.
func NewStaticDevice() *StaticDevice {
	return &StaticDevice{
		Axes:    make(map[cfg.ControlID]float64),
		Buttons: make(map[cfg.ControlID]bool),
	}
}

func (d *StaticDevice) Axis(id cfg.ControlID) float64 { return d.Axes[id] }

func (d *StaticDevice) Button(id cfg.ControlID) bool { return d.Buttons[id] }

// Press sets a button's held state.
func (d *StaticDevice) Press(id cfg.ControlID, held bool) {
	d.Buttons[id] = held
}
