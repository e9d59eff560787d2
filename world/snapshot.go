package world

import (
	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/input"
	"github.com/automoto/bloodduel/shared/gamemath"
	"github.com/automoto/bloodduel/systems"
	"github.com/automoto/bloodduel/systems/factory"
	"github.com/automoto/bloodduel/tags"
	"github.com/yohamta/donburi"
)

// ActorView is a read-only copy of one actor.
type ActorView struct {
	ID          int
	Box         gamemath.Rect
	VX, VY      float64
	Health      float64
	MaxHealth   float64
	FacingRight bool
	State       cfg.ActorState
	Blocking    bool
	Shadow      bool

	JumpsRemaining int
	KnockbackX     float64
	KnockbackY     float64

	MeleeActive bool
	ComboCount  int
	Directive   cfg.MeleeDirective

	Inventory     []components.ItemStack
	Selected      int
	Buff          cfg.ItemID
	BuffRemaining int
}

// ProjectileView is a read-only copy of one projectile.
type ProjectileView struct {
	Owner    int
	Kind     cfg.ProjectileKind
	Box      gamemath.Rect
	VX, VY   float64
	Life     int
	Piercing bool
}

// PowerupView is a read-only copy of one powerup.
type PowerupView struct {
	Item cfg.ItemID
	Box  gamemath.Rect
}

// ShakeView is the screen shake to apply this frame.
type ShakeView struct {
	Magnitude        float64
	OffsetX, OffsetY float64
}

// Snapshot is everything a renderer, audio mixer or network sender may read
// between ticks. Nothing in it aliases live world state.
type Snapshot struct {
	Tick        uint64
	Actors      []ActorView
	Projectiles []ProjectileView
	Powerups    []PowerupView
	Platforms   []gamemath.Rect
	Round       components.RoundData
	Shake       ShakeView
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:  w.tick,
		Round: w.Round(),
	}

	for _, a := range factory.Actors(w.ecs) {
		if a != nil {
			s.Actors = append(s.Actors, viewActor(a))
		}
	}

	tags.Projectile.Each(w.ecs, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		s.Projectiles = append(s.Projectiles, ProjectileView{
			Owner:    p.Owner,
			Kind:     p.Kind,
			Box:      components.Object.Get(e).Rect(),
			VX:       p.VX,
			VY:       p.VY,
			Life:     p.Life,
			Piercing: p.Piercing,
		})
	})

	tags.Powerup.Each(w.ecs, func(e *donburi.Entry) {
		s.Powerups = append(s.Powerups, PowerupView{
			Item: components.Powerup.Get(e).Item,
			Box:  components.Object.Get(e).Rect(),
		})
	})

	for _, p := range factory.MustArena(w.ecs).Platforms {
		s.Platforms = append(s.Platforms, gamemath.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H})
	}

	if entry, ok := components.ScreenShake.First(w.ecs); ok {
		shake := components.ScreenShake.Get(entry)
		s.Shake = ShakeView{Magnitude: shake.Current, OffsetX: shake.OffsetX, OffsetY: shake.OffsetY}
	}

	return s
}

func viewActor(e *donburi.Entry) ActorView {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	health := components.Health.Get(e)
	melee := components.Melee.Get(e)
	inv := components.Inventory.Get(e)
	buff := components.Buff.Get(e)

	slots := make([]components.ItemStack, len(inv.Slots))
	copy(slots, inv.Slots)

	return ActorView{
		ID:             player.ID,
		Box:            components.Object.Get(e).Rect(),
		VX:             physics.SpeedX,
		VY:             physics.SpeedY,
		Health:         health.Current,
		MaxHealth:      health.Max,
		FacingRight:    player.FacingRight,
		State:          systems.State(e),
		Blocking:       player.Blocking,
		Shadow:         player.Shadow,
		JumpsRemaining: physics.JumpsRemaining,
		KnockbackX:     physics.KnockbackX,
		KnockbackY:     physics.KnockbackY,
		MeleeActive:    melee.Active,
		ComboCount:     melee.ComboCount,
		Directive:      melee.LastDirective,
		Inventory:      slots,
		Selected:       inv.Selected,
		Buff:           buff.Active,
		BuffRemaining:  buff.Remaining,
	}
}

// Actor returns the view of actor id.
func (s Snapshot) Actor(id int) (ActorView, bool) {
	for _, a := range s.Actors {
		if a.ID == id {
			return a, true
		}
	}
	return ActorView{}, false
}

// BotView is the subset of the view a bot decides from.
func (a ActorView) BotView() input.BotView {
	frac := 0.0
	if a.MaxHealth > 0 {
		frac = a.Health / a.MaxHealth
	}
	return input.BotView{
		X:           a.Box.X + a.Box.W/2,
		Y:           a.Box.Y + a.Box.H/2,
		Feet:        a.Box.Y + a.Box.H,
		VY:          a.VY,
		HealthFrac:  frac,
		OnGround:    a.State == cfg.StateGrounded,
		WallSliding: a.State == cfg.StateWallSliding,
		HasItem:     len(a.Inventory) > 0,
	}
}
