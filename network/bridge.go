// Package network connects a world to a remote peer through a relay: the
// bridge turns local events into sync messages and applies the peer's
// messages to the shadow actor.
package network

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/logger"
	"github.com/automoto/bloodduel/shared/messages"
	"github.com/automoto/bloodduel/systems"
	"github.com/automoto/bloodduel/world"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// Sender delivers outbound messages. *Client implements it.
type Sender interface {
	Send(msg any) error
}

// Bridge is the world's network collaborator. It must be used from the
// goroutine that ticks the world.
type Bridge struct {
	world    *world.World
	recorder *Recorder
	outbox   []any
	lastSync uint64
	log      *logrus.Entry
}

// NewBridge subscribes to w's events. recorder may be nil.
func NewBridge(w *world.World, recorder *Recorder) *Bridge {
	b := &Bridge{
		world:    w,
		recorder: recorder,
		log:      logger.For("bridge"),
	}
	b.subscribe(w.ECS())
	return b
}

func (b *Bridge) subscribe(ecs donburi.World) {
	systems.MeleePerformedEvent.Subscribe(ecs, func(_ donburi.World, e systems.MeleePerformed) {
		if e.Remote || !b.isLocal(e.ActorID) {
			return
		}
		b.queue(messages.MeleeEvent{PlayerID: e.ActorID, ComboCount: e.ComboCount, Type: e.Directive.String()})
	})
	systems.ProjectileFiredEvent.Subscribe(ecs, func(_ donburi.World, e systems.ProjectileFired) {
		if e.Remote || !b.isLocal(e.Owner) {
			return
		}
		b.queue(messages.ProjectileSpawned{X: e.X, Y: e.Y, VX: e.VX, Owner: e.Owner, Type: e.Kind.String()})
	})
	systems.ActorDamagedEvent.Subscribe(ecs, func(_ donburi.World, e systems.ActorDamaged) {
		if !b.isLocal(e.ActorID) {
			return
		}
		b.queue(messages.DamageEvent{
			PlayerID:     e.ActorID,
			Damage:       e.Amount,
			Health:       e.Health,
			KnockbackDir: e.KnockbackDir,
			LaunchY:      e.LaunchY,
		})
	})
	systems.RemoteHitEvent.Subscribe(ecs, func(_ donburi.World, e systems.RemoteHit) {
		if !b.online() {
			return
		}
		b.queue(messages.DamageEvent{
			PlayerID:     e.DefenderID,
			Damage:       e.Damage,
			KnockbackDir: e.KnockbackDir,
			LaunchY:      e.LaunchY,
		})
	})
	systems.LocalDefeatedEvent.Subscribe(ecs, func(_ donburi.World, e systems.LocalDefeated) {
		if !b.online() {
			return
		}
		b.queue(messages.RoundEnd{WinnerID: e.WinnerID})
	})
}

func (b *Bridge) online() bool {
	return b.world.Round().Online()
}

func (b *Bridge) isLocal(id int) bool {
	round := b.world.Round()
	return round.Online() && id == round.LocalID
}

func (b *Bridge) shadowID() int {
	if b.world.Round().LocalID == cfg.PlayerOne {
		return cfg.PlayerTwo
	}
	return cfg.PlayerOne
}

func (b *Bridge) queue(msg any) {
	b.outbox = append(b.outbox, msg)
}

// Collect returns the messages to send after the current tick: the queued
// event messages, plus a PlayerUpdate for the local actor every sync interval.
// Outside online mode it returns nothing and drops anything queued.
func (b *Bridge) Collect() []any {
	if !b.online() {
		b.outbox = nil
		return nil
	}

	tick := b.world.TickCount()
	if tick-b.lastSync >= uint64(cfg.Network.SyncInterval) {
		if update, ok := b.localUpdate(); ok {
			b.outbox = append(b.outbox, update)
		}
		b.lastSync = tick
	}

	out := b.outbox
	b.outbox = nil
	for _, msg := range out {
		b.record(Outbound, msg)
	}
	return out
}

func (b *Bridge) localUpdate() (messages.PlayerUpdate, bool) {
	round := b.world.Round()
	local, ok := b.world.Actor(round.LocalID)
	if !ok {
		return messages.PlayerUpdate{}, false
	}
	obj := components.Object.Get(local)
	physics := components.Physics.Get(local)
	player := components.Player.Get(local)

	return messages.PlayerUpdate{
		PlayerID:    round.LocalID,
		X:           messages.F64(obj.X),
		Y:           messages.F64(obj.Y),
		VX:          messages.F64(physics.SpeedX),
		VY:          messages.F64(physics.SpeedY),
		Health:      messages.F64(components.Health.Get(local).Current),
		FacingRight: messages.Bool(player.FacingRight),
		Blocking:    messages.Bool(player.Blocking),
	}, true
}

// Flush collects and sends. Send failures are joined; a message that fails is
// not retried.
func (b *Bridge) Flush(s Sender) error {
	var errs []error
	for _, msg := range b.Collect() {
		if err := s.Send(msg); err != nil {
			errs = append(errs, fmt.Errorf("send %T: %w", msg, err))
		}
	}
	return errors.Join(errs...)
}

// Apply feeds one inbound message into the world. Sync messages only count
// while online, and messages about unknown actors are ignored.
func (b *Bridge) Apply(msg any) {
	b.record(Inbound, msg)

	switch m := msg.(type) {
	case messages.MatchFound:
		b.outbox = nil
		b.lastSync = b.world.TickCount()
		b.world.StartOnline(m.PlayerID)
		return
	case messages.OpponentDisconnected:
		b.outbox = nil
		b.world.StopOnline()
		return
	}

	if !b.online() {
		return
	}

	switch m := msg.(type) {
	case messages.PlayerUpdate:
		b.applyUpdate(m)
	case messages.MeleeEvent:
		b.applyMelee(m)
	case messages.ProjectileSpawned:
		if m.Owner != b.shadowID() {
			return
		}
		systems.SpawnRemoteProjectile(b.world.ECS(), m.Owner, cfg.ParseProjectileKind(m.Type), m.X, m.Y, m.VX)
	case messages.DamageEvent:
		b.applyDamage(m)
	case messages.RoundEnd:
		if m.WinnerID != cfg.PlayerOne && m.WinnerID != cfg.PlayerTwo {
			b.log.WithField("winner", m.WinnerID).Warn("ignoring round end with invalid winner")
			return
		}
		b.world.EndRound(m.WinnerID, true)
	default:
		b.log.WithField("type", fmt.Sprintf("%T", msg)).Debug("ignoring message")
	}
}

// ApplyAll applies msgs in order.
func (b *Bridge) ApplyAll(msgs []any) {
	for _, msg := range msgs {
		b.Apply(msg)
	}
}

func (b *Bridge) shadow(id int) (*donburi.Entry, bool) {
	if id != b.shadowID() {
		return nil, false
	}
	return b.world.Actor(id)
}

func (b *Bridge) applyUpdate(m messages.PlayerUpdate) {
	shadow, ok := b.shadow(m.PlayerID)
	if !ok {
		return
	}
	obj := components.Object.Get(shadow).Object
	physics := components.Physics.Get(shadow)
	player := components.Player.Get(shadow)

	if finite(m.X) {
		obj.X = *m.X
	}
	if finite(m.Y) {
		obj.Y = *m.Y
	}
	obj.Update()
	if finite(m.VX) {
		physics.SpeedX = *m.VX
	}
	if finite(m.VY) {
		physics.SpeedY = *m.VY
	}
	if finite(m.Health) {
		health := components.Health.Get(shadow)
		health.Current = *m.Health
		health.Clamp()
	}
	if m.FacingRight != nil {
		player.FacingRight = *m.FacingRight
	}
	if m.Blocking != nil {
		player.Blocking = *m.Blocking
	}
}

// applyMelee mirrors the opponent's swing on the shadow. It is visual only:
// the damage arrives as a DamageEvent.
func (b *Bridge) applyMelee(m messages.MeleeEvent) {
	shadow, ok := b.shadow(m.PlayerID)
	if !ok {
		return
	}
	melee := components.Melee.Get(shadow)
	melee.Active = true
	melee.ActiveTimer = cfg.Melee.ActiveWindow
	melee.ComboCount = m.ComboCount
	melee.LastDirective = cfg.ParseDirective(m.Type)

	obj := components.Object.Get(shadow)
	systems.MeleePerformedEvent.Publish(b.world.ECS(), systems.MeleePerformed{
		ActorID:     m.PlayerID,
		ComboCount:  m.ComboCount,
		Directive:   melee.LastDirective,
		X:           obj.X,
		Y:           obj.Y,
		FacingRight: components.Player.Get(shadow).FacingRight,
		Remote:      true,
	})
}

func (b *Bridge) applyDamage(m messages.DamageEvent) {
	round := b.world.Round()
	if m.PlayerID == round.LocalID {
		local, ok := b.world.Actor(m.PlayerID)
		if !ok {
			return
		}
		systems.TakeDamage(b.world.ECS(), local, m.Damage, orZero(m.KnockbackDir), launchOrDefault(m.LaunchY))
		return
	}

	shadow, ok := b.shadow(m.PlayerID)
	if !ok || math.IsNaN(m.Health) {
		return
	}
	health := components.Health.Get(shadow)
	health.Current = m.Health
	health.Clamp()
}

// finite reports whether an optional field was sent with a usable value.
func finite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

func launchOrDefault(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return cfg.Combat.DefaultLaunchY
	}
	return v
}

func orZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (b *Bridge) record(direction string, msg any) {
	if b.recorder == nil {
		return
	}
	if err := b.recorder.Record(b.world.TickCount(), direction, msg); err != nil {
		b.log.WithError(err).Warn("recording failed")
	}
}
