package config

// ActionID represents a logical button action of the normalized command
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionDash
	ActionAttack
	ActionBlock
	ActionItem
	ActionSwitchItem
	ActionCount // Must be last - used for array sizing
)

// ControlID names a physical control on an input device, e.g. "key:w" or
// "pad:button:0". The input collaborator decides what the names mean.
type ControlID string

// AxisBinding maps one normalized axis to an analog control plus an optional
// pair of digital controls that drive it to -1 / +1.
type AxisBinding struct {
	Analog   ControlID
	Negative []ControlID
	Positive []ControlID
}

// ControlScheme is a complete binding for one actor.
type ControlScheme struct {
	Name    string
	X       AxisBinding
	Y       AxisBinding
	Buttons map[ActionID][]ControlID

	// BlockOnDown makes a downward Y beyond the directive threshold count as block.
	BlockOnDown bool
}

// ControlSchemeID selects one of the built-in schemes
type ControlSchemeID int

const (
	ControlSchemeWASD ControlSchemeID = iota
	ControlSchemeArrows
	ControlSchemePad0
	ControlSchemePad1
)

// InputConfig holds all input mappings
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	Schemes        map[ControlSchemeID]ControlScheme
}

// Input is the global input configuration
var Input InputConfig

func padScheme(name, pad string) ControlScheme {
	button := func(n string) ControlID { return ControlID(pad + ":button:" + n) }
	return ControlScheme{
		Name: name,
		X: AxisBinding{
			Analog:   ControlID(pad + ":axis:0"),
			Negative: []ControlID{button("14")},
			Positive: []ControlID{button("15")},
		},
		Y: AxisBinding{
			Analog:   ControlID(pad + ":axis:1"),
			Negative: []ControlID{button("12")},
			Positive: []ControlID{button("13")},
		},
		Buttons: map[ActionID][]ControlID{
			ActionJump:       {button("0")},
			ActionAttack:     {button("2")},
			ActionItem:       {button("3")},
			ActionSwitchItem: {button("1")},
			ActionDash:       {button("5"), button("7")},
			ActionBlock:      {button("4"), button("6")},
		},
		BlockOnDown: true,
	}
}

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.2,
		Schemes: map[ControlSchemeID]ControlScheme{
			ControlSchemeWASD: {
				Name: "wasd",
				X:    AxisBinding{Negative: []ControlID{"key:a"}, Positive: []ControlID{"key:d"}},
				Y:    AxisBinding{Negative: []ControlID{"key:w"}, Positive: []ControlID{"key:s"}},
				Buttons: map[ActionID][]ControlID{
					ActionJump:       {"key:w"},
					ActionAttack:     {"key:e"},
					ActionItem:       {"key:space"},
					ActionSwitchItem: {"key:q"},
					ActionDash:       {"key:shift"},
					ActionBlock:      {"key:s"},
				},
			},
			ControlSchemeArrows: {
				Name: "arrows",
				X:    AxisBinding{Negative: []ControlID{"key:arrowleft"}, Positive: []ControlID{"key:arrowright"}},
				Y:    AxisBinding{Negative: []ControlID{"key:arrowup"}, Positive: []ControlID{"key:arrowdown"}},
				Buttons: map[ActionID][]ControlID{
					ActionJump:       {"key:arrowup"},
					ActionAttack:     {"key:l"},
					ActionItem:       {"key:enter"},
					ActionSwitchItem: {"key:k"},
					ActionDash:       {"key:control"},
					ActionBlock:      {"key:arrowdown"},
				},
			},
			ControlSchemePad0: padScheme("pad0", "pad0"),
			ControlSchemePad1: padScheme("pad1", "pad1"),
		},
	}
}
