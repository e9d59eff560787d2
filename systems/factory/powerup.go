package factory

import (
	"github.com/automoto/bloodduel/archetypes"
	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePowerup(w donburi.World, item cfg.ItemID, x, y float64) *donburi.Entry {
	p := archetypes.Powerup.Spawn(w)

	obj := resolv.NewObject(x, y, cfg.Items.PowerupSize, cfg.Items.PowerupSize, tags.ResolvPowerup)
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})
	MustArena(w).Space.Add(obj)

	components.Powerup.SetValue(p, components.PowerupData{Item: item})

	return p
}

// Destroy removes an entity and its collision object from the world.
func Destroy(w donburi.World, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e).Object; obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}
	w.Remove(e.Entity())
}
