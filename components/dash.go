package components

import "github.com/yohamta/donburi"

type DashData struct {
	Dashing  bool
	Timer    int
	Cooldown int
	DirX     float64
	DirY     float64
}

var Dash = donburi.NewComponentType[DashData]()
