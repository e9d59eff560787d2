package archetypes

import (
	"github.com/automoto/bloodduel/components"
	"github.com/automoto/bloodduel/tags"
	"github.com/yohamta/donburi"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Actor = newArchetype(
		tags.Actor,
		components.Player,
		components.Object,
		components.Health,
		components.Physics,
		components.Melee,
		components.Dash,
		components.Inventory,
		components.Buff,
		components.PlayerInput,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Powerup = newArchetype(
		tags.Powerup,
		components.Powerup,
		components.Object,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Round = newArchetype(
		components.Round,
	)
	ScreenShake = newArchetype(
		components.ScreenShake,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
