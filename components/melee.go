package components

import (
	cfg "github.com/automoto/bloodduel/config"
	"github.com/yohamta/donburi"
)

type MeleeData struct {
	Active      bool
	ActiveTimer int // ticks left in the hit-active window
	Cooldown    int
	ComboCount  int // 0..2
	ComboTimer  int // combo resets to 0 when this runs out

	LastDirective cfg.MeleeDirective
}

var Melee = donburi.NewComponentType[MeleeData]()
