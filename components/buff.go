package components

import (
	cfg "github.com/automoto/bloodduel/config"
	"github.com/yohamta/donburi"
)

type BuffData struct {
	Active    cfg.ItemID // ItemNone when no buff is running
	Remaining int
}

// Has reports whether the given buff is running.
func (b *BuffData) Has(buff cfg.ItemID) bool {
	return b.Active != cfg.ItemNone && b.Active == buff
}

var Buff = donburi.NewComponentType[BuffData]()
