package factory

import (
	"github.com/automoto/bloodduel/archetypes"
	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/yohamta/donburi"
)

func CreateRound(w donburi.World) *donburi.Entry {
	round := archetypes.Round.Spawn(w)
	components.Round.SetValue(round, components.RoundData{
		Mode:    cfg.ModeLocal,
		LocalID: cfg.PlayerOne,
	})
	return round
}

func CreateScreenShake(w donburi.World) *donburi.Entry {
	return archetypes.ScreenShake.Spawn(w)
}
