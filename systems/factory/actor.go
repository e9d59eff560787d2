package factory

import (
	"github.com/automoto/bloodduel/archetypes"
	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateActor spawns actor id at its arena spawn point with full health and an
// empty inventory. Actor 1 faces right, actor 2 faces left.
func CreateActor(w donburi.World, id int, shadow bool) *donburi.Entry {
	arena := MustArena(w)
	spawn := arena.Spawns[0]
	if id == cfg.PlayerTwo {
		spawn = arena.Spawns[1]
	}

	actor := archetypes.Actor.Spawn(w)

	obj := resolv.NewObject(spawn[0], spawn[1], cfg.Actor.Width, cfg.Actor.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Actor.Width, cfg.Actor.Height))
	obj.AddTags(tags.ResolvActor)
	obj.Data = actor
	components.Object.SetValue(actor, components.ObjectData{Object: obj})
	arena.Space.Add(obj)

	components.Player.SetValue(actor, components.PlayerData{
		ID:          id,
		FacingRight: id != cfg.PlayerTwo,
		Shadow:      shadow,
	})
	components.Physics.SetValue(actor, components.PhysicsData{
		JumpsRemaining: cfg.Actor.JumpsPerLanding,
	})
	components.Health.SetValue(actor, components.HealthData{
		Current: cfg.Actor.MaxHealth,
		Max:     cfg.Actor.MaxHealth,
	})
	components.Inventory.SetValue(actor, components.InventoryData{
		Slots: make([]components.ItemStack, 0, cfg.Items.MaxSlots),
	})
	components.Buff.SetValue(actor, components.BuffData{Active: cfg.ItemNone})

	return actor
}

// ActorByID returns the actor with the given id, if present.
func ActorByID(w donburi.World, id int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Actor.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Player.Get(e).ID == id {
			found = e
		}
	})
	return found, found != nil
}

// Actors returns both actors ordered by id. Missing slots are nil.
func Actors(w donburi.World) [2]*donburi.Entry {
	var out [2]*donburi.Entry
	tags.Actor.Each(w, func(e *donburi.Entry) {
		id := components.Player.Get(e).ID
		if id == cfg.PlayerOne || id == cfg.PlayerTwo {
			out[id-1] = e
		}
	})
	return out
}

// Opponent returns the other actor.
func Opponent(w donburi.World, id int) (*donburi.Entry, bool) {
	other := cfg.PlayerOne
	if id == cfg.PlayerOne {
		other = cfg.PlayerTwo
	}
	return ActorByID(w, other)
}
