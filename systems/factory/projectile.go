package factory

import (
	"github.com/automoto/bloodduel/archetypes"
	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateProjectile spawns a projectile of kind whose leading point is (x, y)
// and that travels along dir (+1 right, -1 left).
func CreateProjectile(w donburi.World, owner int, kind cfg.ProjectileKind, x, y, dir float64) *donburi.Entry {
	profile, ok := cfg.Projectile.Profiles[kind]
	if !ok {
		kind = cfg.ProjectileFireball
		profile = cfg.Projectile.Profiles[kind]
	}
	if dir >= 0 {
		dir = cfg.DirectionRight
	} else {
		dir = cfg.DirectionLeft
	}

	p := archetypes.Projectile.Spawn(w)

	obj := resolv.NewObject(x, y, profile.Width, profile.Height, tags.ResolvProjectile)
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})
	MustArena(w).Space.Add(obj)

	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:      owner,
		Kind:       kind,
		VX:         dir * cfg.Projectile.Speed * profile.SpeedMul,
		Piercing:   profile.Piercing,
		Homing:     profile.Homing,
		Life:       profile.Life,
		HitTargets: make(map[int]bool, 2),
	})

	return p
}
