package messages

// PlayerUpdate is the periodic state of the sender's own actor. Nil fields
// were not sent and leave the receiver's copy unchanged.
type PlayerUpdate struct {
	PlayerID    int
	X, Y        *float64
	VX, VY      *float64
	Health      *float64
	FacingRight *bool
	Blocking    *bool
}

// MeleeEvent is sent when the sender's actor swings
type MeleeEvent struct {
	PlayerID   int
	ComboCount int
	Type       string // "NEUTRAL", "UP" or "DOWN"
}

// ProjectileSpawned is sent when the sender's actor fires an item projectile
type ProjectileSpawned struct {
	X, Y  float64
	VX    float64
	Owner int
	Type  string // "SWARM", "FIREBALL" or "BOLT"
}

// DamageEvent carries damage for PlayerID.
//
// Sent for the opponent's id it is a hit the victim's peer must apply itself,
// so Damage is the raw amount before shield or block. Sent for the sender's
// own id it confirms damage already applied and Health is authoritative.
type DamageEvent struct {
	PlayerID     int
	Damage       float64
	Health       float64
	KnockbackDir float64
	LaunchY      float64
}

// RoundEnd is sent once by the peer whose actor died. The relay echoes it to
// both peers so they close the round together.
type RoundEnd struct {
	WinnerID int
}

// F64 returns a pointer to v for optional message fields.
func F64(v float64) *float64 { return &v }

// Bool returns a pointer to v for optional message fields.
func Bool(v bool) *bool { return &v }
