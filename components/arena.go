package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ArenaData is the singleton holding the collision space and the platform
// list. Platforms keep insertion order; collision walks them in that order.
type ArenaData struct {
	Space     *resolv.Space
	Platforms []*resolv.Object
	Width     float64
	Height    float64

	Spawns      [2][2]float64
	PowerupZone [4]float64 // x, y, w, h
}

var Arena = donburi.NewComponentType[ArenaData]()
