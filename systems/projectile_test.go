package systems

import (
	"testing"

	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestBoltHitsAndDespawns(t *testing.T) {
	w, _, p2 := newTestWorld(t)
	place(p2, 600, 510)
	factory.CreateProjectile(w, cfg.PlayerOne, cfg.ProjectileBolt, 585, 520, cfg.DirectionRight)

	var damaged []ActorDamaged
	ActorDamagedEvent.Subscribe(w, func(_ donburi.World, e ActorDamaged) { damaged = append(damaged, e) })

	UpdateProjectiles(w)
	events.ProcessAllEvents(w)

	assert.InDelta(t, 90, components.Health.Get(p2).Current, 1e-9)
	assert.Equal(t, 0, projectileCount(w))
	assert.Equal(t, 0.0, components.Physics.Get(p2).KnockbackX, "projectiles carry no knockback")
	assert.Equal(t, 0.0, components.Physics.Get(p2).KnockbackY)
	require.Len(t, damaged, 1)
	assert.Equal(t, cfg.Combat.DefaultLaunchY, damaged[0].LaunchY)
}

func TestFireballPiercesButHitsOnce(t *testing.T) {
	w, _, p2 := newTestWorld(t)
	place(p2, 600, 510)
	factory.CreateProjectile(w, cfg.PlayerOne, cfg.ProjectileFireball, 580, 515, cfg.DirectionRight)

	UpdateProjectiles(w)
	UpdateProjectiles(w)

	assert.InDelta(t, 90, components.Health.Get(p2).Current, 1e-9)
	assert.Equal(t, 1, projectileCount(w))
}

func TestProjectileIgnoresOwner(t *testing.T) {
	w, _, p2 := newTestWorld(t)
	place(p2, 600, 510)
	factory.CreateProjectile(w, cfg.PlayerTwo, cfg.ProjectileBolt, 585, 520, cfg.DirectionRight)

	UpdateProjectiles(w)

	assert.Equal(t, cfg.Actor.MaxHealth, components.Health.Get(p2).Current)
	assert.Equal(t, 1, projectileCount(w))
}

func TestProjectileAgainstShadowDespawnsWithoutDamage(t *testing.T) {
	w, _, p2 := newTestWorld(t)
	place(p2, 600, 510)
	components.Player.Get(p2).Shadow = true
	factory.CreateProjectile(w, cfg.PlayerOne, cfg.ProjectileBolt, 585, 520, cfg.DirectionRight)

	UpdateProjectiles(w)

	assert.Equal(t, cfg.Actor.MaxHealth, components.Health.Get(p2).Current)
	assert.Equal(t, 0, projectileCount(w))
}

func TestSwarmHomesWhileApproaching(t *testing.T) {
	w, _, p2 := newTestWorld(t)
	place(p2, 1000, 500)
	toward := factory.CreateProjectile(w, cfg.PlayerOne, cfg.ProjectileSwarm, 400, 300, cfg.DirectionRight)
	away := factory.CreateProjectile(w, cfg.PlayerOne, cfg.ProjectileSwarm, 400, 200, cfg.DirectionLeft)

	UpdateProjectiles(w)

	assert.InDelta(t, cfg.Projectile.HomingRate, components.Projectile.Get(toward).VY, 1e-9)
	assert.InDelta(t, 300+cfg.Projectile.HomingRate, components.Object.Get(toward).Y, 1e-9)
	assert.Equal(t, 0.0, components.Projectile.Get(away).VY)

	for i := 0; i < 40; i++ {
		UpdateProjectiles(w)
		if toward.Valid() {
			require.LessOrEqual(t, components.Projectile.Get(toward).VY, cfg.Projectile.HomingMaxVY)
		}
	}
}

func TestProjectileLeavesArena(t *testing.T) {
	w, _, _ := newTestWorld(t)
	factory.CreateProjectile(w, cfg.PlayerOne, cfg.ProjectileBolt, 1190, 100, cfg.DirectionRight)

	UpdateProjectiles(w)

	assert.Equal(t, 0, projectileCount(w))
}

func TestProjectileExpires(t *testing.T) {
	w, _, _ := newTestWorld(t)
	p := factory.CreateProjectile(w, cfg.PlayerOne, cfg.ProjectileFireball, 100, 100, cfg.DirectionRight)
	life := components.Projectile.Get(p).Life

	for i := 0; i < life-1; i++ {
		components.Object.Get(p).X = 100
		UpdateProjectiles(w)
	}
	require.Equal(t, 1, projectileCount(w))

	UpdateProjectiles(w)
	assert.Equal(t, 0, projectileCount(w))
}

func TestUnknownKindFallsBackToFireball(t *testing.T) {
	w, _, _ := newTestWorld(t)
	p := factory.CreateProjectile(w, cfg.PlayerOne, cfg.ProjectileKind(99), 100, 100, cfg.DirectionLeft)

	data := components.Projectile.Get(p)
	assert.Equal(t, cfg.ProjectileFireball, data.Kind)
	assert.InDelta(t, -10, data.VX, 1e-9)
	assert.True(t, data.Piercing)
}
