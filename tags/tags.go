package tags

import "github.com/yohamta/donburi"

var (
	Actor      = donburi.NewTag().SetName("Actor")
	Platform   = donburi.NewTag().SetName("Platform")
	Projectile = donburi.NewTag().SetName("Projectile")
	Powerup    = donburi.NewTag().SetName("Powerup")
)

// Resolv tags for physics collision
const (
	ResolvPlatform   = "platform"
	ResolvActor      = "actor"
	ResolvProjectile = "projectile"
	ResolvPowerup    = "powerup"
)
