package components

import (
	cfg "github.com/automoto/bloodduel/config"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Owner    int
	Kind     cfg.ProjectileKind
	VX, VY   float64
	Piercing bool
	Homing   bool
	Life     int

	// HitTargets holds the actor ids this projectile already damaged.
	HitTargets map[int]bool

	// Destroy marks the projectile for removal after the current sweep.
	Destroy bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
