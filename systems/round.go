package systems

import (
	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/systems/factory"
	"github.com/automoto/bloodduel/tags"
	"github.com/yohamta/donburi"
)

// MustRound returns the round singleton.
func MustRound(w donburi.World) *components.RoundData {
	return components.Round.Get(components.Round.MustFirst(w))
}

// RoundWinner returns the actor with more health. A tie goes to actor 2.
func RoundWinner(w donburi.World) int {
	actors := factory.Actors(w)
	if actors[0] == nil || actors[1] == nil {
		if actors[0] != nil {
			return cfg.PlayerOne
		}
		return cfg.PlayerTwo
	}
	if components.Health.Get(actors[0]).Current > components.Health.Get(actors[1]).Current {
		return cfg.PlayerOne
	}
	return cfg.PlayerTwo
}

// UpdateRoundClock counts the round clock down and reports whether the round
// should end this tick: either actor is out of health, or time ran out.
func UpdateRoundClock(w donburi.World) bool {
	round := MustRound(w)
	if !round.Active {
		return false
	}
	if round.Clock > 0 {
		round.Clock--
	}

	for _, a := range factory.Actors(w) {
		if a != nil && components.Health.Get(a).Current <= 0 {
			return true
		}
	}
	return round.Clock == 0 && cfg.Round.Duration > 0
}

// EndRound closes the active round in favour of winner. It is a no-op when no
// round is active. remote marks an end decided by the network peer.
func EndRound(w donburi.World, winner int, remote bool) bool {
	round := MustRound(w)
	if !round.Active {
		return false
	}
	round.Active = false
	round.Winner = winner
	round.AddWin(winner)

	RoundEndedEvent.Publish(w, RoundEnded{
		Number: round.Number,
		Winner: winner,
		Scores: round.Scores,
		Remote: remote,
	})
	return true
}

// ResetRound clears projectiles and powerups and respawns both actors at
// their spawn points. In online mode the non-local actor is a shadow.
func ResetRound(w donburi.World) {
	round := MustRound(w)

	var stale []*donburi.Entry
	collect := func(e *donburi.Entry) { stale = append(stale, e) }
	tags.Actor.Each(w, collect)
	tags.Projectile.Each(w, collect)
	tags.Powerup.Each(w, collect)
	for _, e := range stale {
		factory.Destroy(w, e)
	}

	for _, id := range []int{cfg.PlayerOne, cfg.PlayerTwo} {
		shadow := round.Online() && id != round.LocalID
		factory.CreateActor(w, id, shadow)
	}

	round.Active = true
	round.Number++
	round.Clock = cfg.Round.Duration
	round.Winner = 0
	round.RoundEndSent = false

	RoundStartedEvent.Publish(w, RoundStarted{Number: round.Number})
}
