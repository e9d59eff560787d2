package systems

import (
	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/shared/gamemath"
	"github.com/automoto/bloodduel/systems/factory"
	"github.com/automoto/bloodduel/tags"
	"github.com/yohamta/donburi"
)

// SpawnProjectile fires a projectile of kind from the owner's leading edge at
// mid height, along the owner's facing.
func SpawnProjectile(w donburi.World, owner *donburi.Entry, kind cfg.ProjectileKind) *donburi.Entry {
	player := components.Player.Get(owner)
	obj := components.Object.Get(owner).Object

	x := obj.X
	if player.FacingRight {
		x += obj.W
	}
	y := obj.Y + obj.H/2

	p := factory.CreateProjectile(w, player.ID, kind, x, y, player.Facing())
	data := components.Projectile.Get(p)
	ProjectileFiredEvent.Publish(w, ProjectileFired{
		Owner: player.ID,
		Kind:  data.Kind,
		X:     x,
		Y:     y,
		VX:    data.VX,
	})
	return p
}

// SpawnRemoteProjectile mirrors a projectile the opponent fired. Only the sign
// of vx is used; speed comes from the kind's profile.
func SpawnRemoteProjectile(w donburi.World, owner int, kind cfg.ProjectileKind, x, y, vx float64) *donburi.Entry {
	dir := cfg.DirectionRight
	if vx < 0 {
		dir = cfg.DirectionLeft
	}
	p := factory.CreateProjectile(w, owner, kind, x, y, dir)
	ProjectileFiredEvent.Publish(w, ProjectileFired{
		Owner:  owner,
		Kind:   kind,
		X:      x,
		Y:      y,
		VX:     components.Projectile.Get(p).VX,
		Remote: true,
	})
	return p
}

// UpdateProjectiles moves every projectile, applies hits and removes the
// spent ones after the sweep.
func UpdateProjectiles(w donburi.World) {
	arena := factory.MustArena(w)
	actors := factory.Actors(w)

	var spent []*donburi.Entry
	tags.Projectile.Each(w, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e).Object

		p.Life--

		if p.Homing {
			if target := opposingActor(actors, p.Owner); target != nil {
				t := components.Object.Get(target).Object
				targetX := t.X + t.W/2
				targetY := t.Y + t.H/2
				if gamemath.MovingToward(obj.X+obj.W/2, p.VX, targetX) {
					p.VY = gamemath.SteerToward(p.VY, obj.Y+obj.H/2, targetY, cfg.Projectile.HomingRate, cfg.Projectile.HomingMaxVY)
				}
			}
		}

		obj.X += p.VX
		obj.Y += p.VY
		obj.Update()

		hitActors(w, e, p, obj.Check(0, 0, tags.ResolvActor) != nil, actors)

		if p.Life <= 0 || obj.X <= 0 || obj.X >= arena.Width || obj.Y <= 0 || obj.Y >= arena.Height {
			p.Destroy = true
		}
		if p.Destroy {
			spent = append(spent, e)
		}
	})

	for _, e := range spent {
		factory.Destroy(w, e)
	}
}

// hitActors checks actors in id order. broad is the resolv broadphase result;
// when it finds nothing no exact test runs.
func hitActors(w donburi.World, e *donburi.Entry, p *components.ProjectileData, broad bool, actors [2]*donburi.Entry) {
	if !broad {
		return
	}
	box := components.Object.Get(e).Rect()
	for _, actor := range actors {
		if actor == nil || p.Destroy {
			continue
		}
		victim := components.Player.Get(actor)
		if victim.ID == p.Owner || p.HitTargets[victim.ID] {
			continue
		}
		if !gamemath.Overlaps(box, components.Object.Get(actor).Rect()) {
			continue
		}

		TakeDamage(w, actor, cfg.Projectile.Damage, 0, cfg.Combat.DefaultLaunchY)
		p.HitTargets[victim.ID] = true

		profile := cfg.Projectile.Profiles[p.Kind]
		HitOccurredEvent.Publish(w, HitOccurred{
			AttackerID: p.Owner,
			DefenderID: victim.ID,
			X:          box.X,
			Y:          box.Y,
			ColorTag:   profile.ColorTag,
			Damage:     cfg.Projectile.Damage,
		})
		SoundCuedEvent.Publish(w, SoundCued{ActorID: victim.ID, Cue: cfg.CueHit})

		if !p.Piercing {
			p.Destroy = true
		}
	}
}

func opposingActor(actors [2]*donburi.Entry, owner int) *donburi.Entry {
	if owner == cfg.PlayerOne {
		return actors[1]
	}
	return actors[0]
}
