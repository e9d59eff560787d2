package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	SpeedX float64
	SpeedY float64

	// Knockback impulse, decayed separately from steady-state speed
	KnockbackX float64
	KnockbackY float64

	OnGround     bool
	WallSliding  bool
	WallSlideDir int // +1 wall on the right, -1 wall on the left, 0 none

	JumpsRemaining int
	JumpHeld       bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
