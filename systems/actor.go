package systems

import (
	"math"

	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/input"
	"github.com/automoto/bloodduel/shared/gamemath"
	"github.com/automoto/bloodduel/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateActor advances one simulated actor by a tick. The order of the steps
// matters: actions, timers, movement, gravity, integration, collision, and
// finally the melee timers.
func UpdateActor(w donburi.World, entry *donburi.Entry, cmd input.Command) {
	if entry == nil || !entry.Valid() {
		return
	}
	player := components.Player.Get(entry)
	if player.Shadow {
		// Position and health come from the peer; only the mirrored melee
		// window runs here.
		tickMelee(components.Melee.Get(entry))
		return
	}

	cmd = cmd.Normalize()
	in := components.PlayerInput.Get(entry)
	in.Push(cmd)
	edges := in.Edges()

	// 1. Actions
	if cmd.Dash {
		StartDash(w, entry, cmd)
	}
	if edges.JustPressed(cfg.ActionAttack) {
		opponent, _ := factory.Opponent(w, player.ID)
		PerformMelee(w, entry, opponent, cmd)
	}
	if edges.JustPressed(cfg.ActionItem) {
		UseItem(w, entry)
	}
	if edges.JustPressed(cfg.ActionSwitchItem) {
		SwitchItem(entry, 1)
	}

	// 2. Timers
	dash := components.Dash.Get(entry)
	if dash.Dashing {
		dash.Timer--
		if dash.Timer <= 0 {
			dash.Dashing = false
		}
	}
	if dash.Cooldown > 0 {
		dash.Cooldown--
	}
	TickBuff(entry)

	// 3. Speed cap
	maxSpeed := cfg.Actor.MaxSpeed
	if components.Buff.Get(entry).Has(cfg.ItemSpeed) {
		maxSpeed *= cfg.Actor.SpeedBuffMul
	}

	// 4. Movement
	physics := components.Physics.Get(entry)
	if dash.Dashing {
		dashSpeed := cfg.Dash.Distance / float64(cfg.Dash.Duration)
		physics.SpeedX = dash.DirX * dashSpeed
		physics.SpeedY = dash.DirY * dashSpeed
	} else {
		updateRun(player, physics, cmd, maxSpeed)
		applyKnockback(physics)

		if cmd.Jump && !physics.JumpHeld {
			Jump(w, entry)
			physics.JumpHeld = true
		} else if !cmd.Jump {
			physics.JumpHeld = false
		}
	}

	// 5. Gravity and wall slide
	if !dash.Dashing {
		if physics.WallSliding && physics.SpeedY > 0 {
			physics.SpeedY = cfg.Physics.WallSlideSpeed
		} else {
			physics.SpeedY += cfg.Physics.Gravity
		}
	}

	// 6. Integrate
	obj := components.Object.Get(entry).Object
	obj.X += physics.SpeedX
	obj.Y += physics.SpeedY

	// 7. Collision
	ResolvePlatforms(w, entry)
	ClampToWorld(w, entry)
	if physics.OnGround {
		physics.JumpsRemaining = cfg.Actor.JumpsPerLanding
	}

	// 8. Melee timers
	tickMelee(components.Melee.Get(entry))
}

func updateRun(player *components.PlayerData, physics *components.PhysicsData, cmd input.Command, maxSpeed float64) {
	targetVX := 0.0
	if cmd.X < -cfg.Actor.MoveDeadZone {
		targetVX = -maxSpeed
		player.FacingRight = false
	}
	if cmd.X > cfg.Actor.MoveDeadZone {
		targetVX = maxSpeed
		player.FacingRight = true
	}

	// Blocking holds the actor in place and only works on the ground
	if cmd.Block && physics.OnGround {
		player.Blocking = true
		targetVX = 0
	} else {
		player.Blocking = false
	}

	if targetVX != 0 {
		physics.SpeedX = gamemath.EaseToward(physics.SpeedX, targetVX, cfg.Actor.Acceleration)
	} else {
		physics.SpeedX = gamemath.DampWithSnap(physics.SpeedX, cfg.Actor.Friction, cfg.Actor.StopThreshold)
	}
}

// applyKnockback adds the knockback impulse on top of the steady-state
// velocity, then decays it.
func applyKnockback(physics *components.PhysicsData) {
	var kx, ky float64
	kx, physics.KnockbackX = gamemath.DecayImpulse(physics.KnockbackX, cfg.Physics.KnockbackDecay, cfg.Physics.KnockbackThreshold)
	ky, physics.KnockbackY = gamemath.DecayImpulse(physics.KnockbackY, cfg.Physics.KnockbackDecay, cfg.Physics.KnockbackThreshold)
	physics.SpeedX += kx
	physics.SpeedY += ky
}

func tickMelee(melee *components.MeleeData) {
	if melee.Cooldown > 0 {
		melee.Cooldown--
	}
	if melee.ComboTimer > 0 {
		melee.ComboTimer--
		if melee.ComboTimer == 0 {
			melee.ComboCount = 0
		}
	}
	if melee.Active {
		melee.ActiveTimer--
		if melee.ActiveTimer <= 0 {
			melee.Active = false
			melee.ActiveTimer = 0
		}
	}
}

// Jump performs a ground jump, a wall jump or a double jump, in that order of
// preference. With no jump available it does nothing.
func Jump(w donburi.World, entry *donburi.Entry) {
	physics := components.Physics.Get(entry)
	id := components.Player.Get(entry).ID

	switch {
	case physics.OnGround:
		physics.SpeedY = -cfg.Actor.JumpForce
		physics.OnGround = false
		physics.JumpsRemaining--
	case physics.WallSliding:
		physics.SpeedY = -cfg.Actor.WallJumpForceY
		physics.SpeedX = -float64(physics.WallSlideDir) * cfg.Actor.WallJumpForceX
		physics.JumpsRemaining = cfg.Actor.JumpsAfterWallJmp
	case physics.JumpsRemaining > 0:
		physics.SpeedY = -cfg.Actor.DoubleJumpForce
		physics.JumpsRemaining--
	default:
		return
	}
	if physics.JumpsRemaining < 0 {
		physics.JumpsRemaining = 0
	}

	SoundCuedEvent.Publish(w, SoundCued{ActorID: id, Cue: cfg.CueJump})
}

// StartDash begins a dash along the held direction, or along facing when no
// direction is held. It is ignored while dashing or on cooldown.
func StartDash(w donburi.World, entry *donburi.Entry, cmd input.Command) {
	dash := components.Dash.Get(entry)
	if dash.Cooldown > 0 || dash.Dashing {
		return
	}
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)

	var dx, dy float64
	if math.Abs(cmd.X) > cfg.Dash.AxisThreshold {
		dx = gamemath.Sign(cmd.X)
	}
	if math.Abs(cmd.Y) > cfg.Dash.AxisThreshold {
		dy = gamemath.Sign(cmd.Y)
	}
	if dx == 0 && dy == 0 {
		dx = player.Facing()
	}
	if dx != 0 && dy != 0 {
		dx *= cfg.Dash.DiagonalScale
		dy *= cfg.Dash.DiagonalScale
	}

	dash.Dashing = true
	dash.Timer = cfg.Dash.Duration
	dash.Cooldown = cfg.Dash.Cooldown
	dash.DirX = dx
	dash.DirY = dy

	speed := cfg.Dash.Distance / float64(cfg.Dash.Duration)
	physics.SpeedX = dx * speed
	physics.SpeedY = dy * speed * cfg.Dash.VerticalBurst

	SoundCuedEvent.Publish(w, SoundCued{ActorID: player.ID, Cue: cfg.CueDash})
}

// State reports the actor's locomotion state.
func State(entry *donburi.Entry) cfg.ActorState {
	if components.Dash.Get(entry).Dashing {
		return cfg.StateDashing
	}
	physics := components.Physics.Get(entry)
	switch {
	case physics.OnGround:
		return cfg.StateGrounded
	case physics.WallSliding:
		return cfg.StateWallSliding
	}
	return cfg.StateAirborne
}
