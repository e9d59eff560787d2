package systems

import (
	"math/rand"

	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/shared/gamemath"
	"github.com/automoto/bloodduel/systems/factory"
	"github.com/automoto/bloodduel/tags"
	"github.com/yohamta/donburi"
)

// SpawnPowerup drops a random catalogue item at a random point of the arena's
// powerup zone.
func SpawnPowerup(w donburi.World, rng *rand.Rand) *donburi.Entry {
	if len(cfg.Catalogue) == 0 {
		return nil
	}
	zone := factory.MustArena(w).PowerupZone
	item := cfg.Catalogue[rng.Intn(len(cfg.Catalogue))].ID
	x := zone[0] + rng.Float64()*zone[2]
	y := zone[1] + rng.Float64()*zone[3]

	p := factory.CreatePowerup(w, item, x, y)
	PowerupSpawnedEvent.Publish(w, PowerupSpawned{Item: item, X: x, Y: y})
	return p
}

// UpdatePowerups ages powerups and hands them to the first overlapping actor,
// actor 1 before actor 2. A powerup whose toucher has a full inventory stays
// where it is.
func UpdatePowerups(w donburi.World) {
	actors := factory.Actors(w)

	var taken []*donburi.Entry
	tags.Powerup.Each(w, func(e *donburi.Entry) {
		p := components.Powerup.Get(e)
		p.Age++
		if cfg.Items.PowerupLifetime > 0 && p.Age >= cfg.Items.PowerupLifetime {
			p.Destroy = true
		}

		obj := components.Object.Get(e)
		if !p.Destroy && obj.Check(0, 0, tags.ResolvActor) != nil {
			box := obj.Rect()
			for _, actor := range actors {
				if actor == nil || !gamemath.Overlaps(box, components.Object.Get(actor).Rect()) {
					continue
				}
				// The first toucher decides the outcome even when it is full
				if Pickup(actor, p.Item) {
					p.Destroy = true
					id := components.Player.Get(actor).ID
					PowerupPickedEvent.Publish(w, PowerupPicked{ActorID: id, Item: p.Item})
					SoundCuedEvent.Publish(w, SoundCued{ActorID: id, Cue: cfg.CuePickup})
				}
				break
			}
		}

		if p.Destroy {
			taken = append(taken, e)
		}
	})

	for _, e := range taken {
		factory.Destroy(w, e)
	}
}
