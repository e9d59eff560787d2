package factory

import (
	"github.com/automoto/bloodduel/archetypes"
	"github.com/automoto/bloodduel/components"
	"github.com/automoto/bloodduel/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space cell size in pixels
const cellSize = 16

// CreateArena builds the arena singleton: the shared collision space plus one
// platform entity per rectangle, in map order.
func CreateArena(w donburi.World, arena *leveldata.Arena) *donburi.Entry {
	entry := archetypes.Arena.Spawn(w)

	space := resolv.NewSpace(int(arena.Width), int(arena.Height), cellSize, cellSize)
	data := components.ArenaData{
		Space:  space,
		Width:  arena.Width,
		Height: arena.Height,
		Spawns: [2][2]float64{
			{arena.Spawns[0].X, arena.Spawns[0].Y},
			{arena.Spawns[1].X, arena.Spawns[1].Y},
		},
		PowerupZone: [4]float64{
			arena.PowerupZone.X, arena.PowerupZone.Y,
			arena.PowerupZone.W, arena.PowerupZone.H,
		},
	}
	components.Arena.SetValue(entry, data)

	for _, r := range arena.Platforms {
		CreatePlatform(w, resolv.NewObject(r.X, r.Y, r.W, r.H))
	}

	return entry
}

// MustArena returns the arena singleton. Every world built by this module has
// one, so a missing arena is a programming error.
func MustArena(w donburi.World) *components.ArenaData {
	return components.Arena.Get(components.Arena.MustFirst(w))
}
