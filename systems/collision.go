package systems

import (
	"github.com/automoto/bloodduel/components"
	"github.com/automoto/bloodduel/shared/gamemath"
	"github.com/automoto/bloodduel/systems/factory"
	"github.com/automoto/bloodduel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ResolvePlatforms pushes an actor out of every platform it overlaps. Each
// platform resolves at most one axis, in platform insertion order, so two
// platforms meeting at a seam can both correct the actor in the same tick.
func ResolvePlatforms(w donburi.World, entry *donburi.Entry) {
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry).Object

	physics.OnGround = false
	physics.WallSliding = false
	physics.WallSlideDir = 0

	obj.Update()
	check := obj.Check(0, 0, tags.ResolvPlatform)
	if check == nil {
		return
	}
	candidates := make(map[*resolv.Object]bool, len(check.Objects))
	for _, o := range check.Objects {
		candidates[o] = true
	}

	for _, platform := range factory.MustArena(w).Platforms {
		if !candidates[platform] {
			continue
		}
		mover := gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
		static := gamemath.Rect{X: platform.X, Y: platform.Y, W: platform.W, H: platform.H}
		if !gamemath.Overlaps(mover, static) {
			continue
		}
		resolvePlatform(physics, obj, static)
	}

	// A wall resolved before the floor at a seam
	if physics.OnGround {
		physics.WallSliding = false
		physics.WallSlideDir = 0
	}

	obj.Update()
}

func resolvePlatform(physics *components.PhysicsData, obj *resolv.Object, platform gamemath.Rect) {
	pen := gamemath.Penetrate(gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}, platform)

	switch pen.Resolve(physics.SpeedX, physics.SpeedY) {
	case gamemath.SideTop:
		obj.Y = platform.Y - obj.H
		physics.SpeedY = 0
		physics.OnGround = true
	case gamemath.SideBottom:
		obj.Y = platform.Y + platform.H
		physics.SpeedY = 0
	case gamemath.SideLeft:
		obj.X = platform.X - obj.W
		physics.SpeedX = 0
		// Wall is to the right
		if !physics.OnGround && physics.SpeedY > 0 {
			physics.WallSliding = true
			physics.WallSlideDir = 1
		}
	case gamemath.SideRight:
		obj.X = platform.X + platform.W
		physics.SpeedX = 0
		// Wall is to the left
		if !physics.OnGround && physics.SpeedY > 0 {
			physics.WallSliding = true
			physics.WallSlideDir = -1
		}
	}
}

// ClampToWorld keeps an actor inside the arena horizontally, zeroing vx at
// either edge.
func ClampToWorld(w donburi.World, entry *donburi.Entry) {
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry).Object
	width := factory.MustArena(w).Width

	if obj.X < 0 {
		obj.X = 0
		physics.SpeedX = 0
	}
	if obj.X > width-obj.W {
		obj.X = width - obj.W
		physics.SpeedX = 0
	}
	obj.Update()
}
