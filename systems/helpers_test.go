package systems

import (
	"testing"

	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/input"
	"github.com/automoto/bloodduel/shared/leveldata"
	"github.com/automoto/bloodduel/systems/factory"
	"github.com/automoto/bloodduel/tags"
	"github.com/yohamta/donburi"
)

// newTestWorld builds the default arena with both actors at their spawns.
func newTestWorld(t *testing.T) (donburi.World, *donburi.Entry, *donburi.Entry) {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateArena(w, leveldata.DefaultArena())
	factory.CreateRound(w)
	factory.CreateScreenShake(w)
	p1 := factory.CreateActor(w, cfg.PlayerOne, false)
	p2 := factory.CreateActor(w, cfg.PlayerTwo, false)
	return w, p1, p2
}

// newArenaWorld builds a world whose platforms are inserted in the given order.
func newArenaWorld(t *testing.T, platforms ...cfg.Rect) (donburi.World, *donburi.Entry) {
	t.Helper()
	arena := leveldata.DefaultArena()
	arena.Platforms = platforms
	w := donburi.NewWorld()
	factory.CreateArena(w, arena)
	factory.CreateRound(w)
	factory.CreateScreenShake(w)
	return w, factory.CreateActor(w, cfg.PlayerOne, false)
}

func place(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e).Object
	obj.X = x
	obj.Y = y
	obj.Update()
}

// settle lets an actor fall until it stands on something.
func settle(t *testing.T, w donburi.World, e *donburi.Entry) {
	t.Helper()
	for i := 0; i < 300; i++ {
		UpdateActor(w, e, input.Command{})
		if components.Physics.Get(e).OnGround {
			return
		}
	}
	t.Fatal("actor never landed")
}

func projectileCount(w donburi.World) int {
	n := 0
	tags.Projectile.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func powerupCount(w donburi.World) int {
	n := 0
	tags.Powerup.Each(w, func(*donburi.Entry) { n++ })
	return n
}
