package config

// ActorState is the vertical/locomotion state reported for an actor each tick.
type ActorState int

const (
	StateGrounded ActorState = iota
	StateAirborne
	StateWallSliding
	StateDashing
)

func (s ActorState) String() string {
	switch s {
	case StateGrounded:
		return "grounded"
	case StateAirborne:
		return "airborne"
	case StateWallSliding:
		return "wallsliding"
	case StateDashing:
		return "dashing"
	}
	return "unknown"
}

// MeleeDirective is the directional variant of a melee attack.
type MeleeDirective int

const (
	DirectiveNeutral MeleeDirective = iota
	DirectiveUp
	DirectiveDown
)

func (d MeleeDirective) String() string {
	switch d {
	case DirectiveUp:
		return "UP"
	case DirectiveDown:
		return "DOWN"
	}
	return "NEUTRAL"
}

// ParseDirective maps a wire name to a directive; anything unknown is NEUTRAL.
func ParseDirective(name string) MeleeDirective {
	switch name {
	case "UP":
		return DirectiveUp
	case "DOWN":
		return DirectiveDown
	}
	return DirectiveNeutral
}

// SoundCue identifies a fire-and-forget audio event.
type SoundCue int

const (
	CueJump SoundCue = iota
	CueDash
	CueAttack
	CueHit
	CueBlock
	CuePickup
	CueFinisher
)

func (c SoundCue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueDash:
		return "dash"
	case CueAttack:
		return "attack"
	case CueHit:
		return "hit"
	case CueBlock:
		return "block"
	case CuePickup:
		return "pickup"
	case CueFinisher:
		return "finisher"
	}
	return "unknown"
}

// GameMode selects who owns round-end detection.
type GameMode int

const (
	ModeLocal GameMode = iota
	ModeOnline
)
