package components

import (
	cfg "github.com/automoto/bloodduel/config"
	"github.com/yohamta/donburi"
)

type PowerupData struct {
	Item    cfg.ItemID
	Age     int
	Destroy bool
}

var Powerup = donburi.NewComponentType[PowerupData]()
