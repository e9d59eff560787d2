// Package world owns the simulation: the entity store, the tick order, the
// round flow and the timers that drive it.
package world

import (
	"math/rand"

	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/input"
	"github.com/automoto/bloodduel/logger"
	"github.com/automoto/bloodduel/shared/leveldata"
	"github.com/automoto/bloodduel/systems"
	"github.com/automoto/bloodduel/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Timer keys
const (
	TimerPowerupSpawn = "powerup-spawn"
	TimerRoundReset   = "round-reset"
)

// Options configures a World.
type Options struct {
	// Arena to fight in; nil selects the default arena.
	Arena *leveldata.Arena

	// Seed for the powerup spawner.
	Seed int64

	Render RenderSink
	Audio  AudioSink
}

// World is a running duel. It is not safe for concurrent use; everything
// happens on the goroutine calling Tick.
type World struct {
	ecs   donburi.World
	sched *Scheduler
	rng   *rand.Rand
	tick  uint64

	render RenderSink
	audio  AudioSink
	log    *logrus.Entry
}

// New builds a world and starts the first local round.
func New(opts Options) *World {
	arena := opts.Arena
	if arena == nil {
		arena = leveldata.DefaultArena()
	}

	w := &World{
		ecs:    donburi.NewWorld(),
		sched:  NewScheduler(),
		rng:    rand.New(rand.NewSource(opts.Seed)),
		render: opts.Render,
		audio:  opts.Audio,
		log:    logger.For("world"),
	}

	factory.CreateArena(w.ecs, arena)
	factory.CreateRound(w.ecs)
	factory.CreateScreenShake(w.ecs)
	w.subscribe()

	w.startSession(cfg.ModeLocal, cfg.PlayerOne)
	return w
}

func (w *World) subscribe() {
	systems.ScreenShakeRequestedEvent.Subscribe(w.ecs, func(ecs donburi.World, e systems.ScreenShakeRequested) {
		systems.TriggerScreenShake(ecs, e.Intensity, e.Duration)
		if w.render != nil {
			w.render.ScreenShake(e)
		}
	})
	systems.MeleePerformedEvent.Subscribe(w.ecs, func(_ donburi.World, e systems.MeleePerformed) {
		if w.render != nil {
			w.render.MeleePerformed(e)
		}
	})
	systems.HitOccurredEvent.Subscribe(w.ecs, func(_ donburi.World, e systems.HitOccurred) {
		if w.render != nil {
			w.render.HitOccurred(e)
		}
	})
	systems.SoundCuedEvent.Subscribe(w.ecs, func(_ donburi.World, e systems.SoundCued) {
		if w.audio != nil {
			w.audio.Cue(e)
		}
	})
	systems.RoundEndedEvent.Subscribe(w.ecs, func(_ donburi.World, e systems.RoundEnded) {
		w.log.WithFields(logrus.Fields{
			"round":  e.Number,
			"winner": e.Winner,
			"p1":     e.Scores[0],
			"p2":     e.Scores[1],
			"remote": e.Remote,
		}).Debug("round ended")
	})
	systems.RoundStartedEvent.Subscribe(w.ecs, func(_ donburi.World, e systems.RoundStarted) {
		w.log.WithField("round", e.Number).Debug("round started")
	})
	systems.PowerupSpawnedEvent.Subscribe(w.ecs, func(_ donburi.World, e systems.PowerupSpawned) {
		w.log.WithFields(logrus.Fields{"item": e.Item.String(), "x": e.X, "y": e.Y}).Debug("powerup spawned")
	})
}

// ECS exposes the entity store to systems-level collaborators.
func (w *World) ECS() donburi.World { return w.ecs }

// Scheduler exposes the tick timers.
func (w *World) Scheduler() *Scheduler { return w.sched }

// TickCount returns the number of completed ticks.
func (w *World) TickCount() uint64 { return w.tick }

// Round returns a copy of the round state.
func (w *World) Round() components.RoundData {
	return *systems.MustRound(w.ecs)
}

// Actor returns the actor with the given id.
func (w *World) Actor(id int) (*donburi.Entry, bool) {
	return factory.ActorByID(w.ecs, id)
}

// Tick advances the simulation by one step. cmds maps actor ids to their
// command for this tick; missing entries read as no input.
func (w *World) Tick(cmds map[int]input.Command) {
	w.tick++

	// 1. Global timers
	systems.UpdateScreenShake(w.ecs)

	round := systems.MustRound(w.ecs)
	if round.Active {
		// 2. Actors, in id order
		for _, a := range factory.Actors(w.ecs) {
			if a == nil || !a.Valid() {
				continue
			}
			systems.UpdateActor(w.ecs, a, cmds[components.Player.Get(a).ID])
		}

		// 3. Projectiles
		systems.UpdateProjectiles(w.ecs)

		// 4. Powerups
		systems.UpdatePowerups(w.ecs)

		// 5. Round end
		if round.Online() {
			w.checkLocalDefeat(round)
		} else if systems.UpdateRoundClock(w.ecs) {
			w.EndRound(systems.RoundWinner(w.ecs), false)
		}
	}

	w.sched.Advance()
	events.ProcessAllEvents(w.ecs)
}

// checkLocalDefeat announces the local actor's death once per round. In
// online mode the round only ends when the peer's roundEnd arrives.
func (w *World) checkLocalDefeat(round *components.RoundData) {
	if round.RoundEndSent {
		return
	}
	local, ok := w.Actor(round.LocalID)
	if !ok || components.Health.Get(local).Current > 0 {
		return
	}
	round.RoundEndSent = true

	winner := cfg.PlayerOne
	if round.LocalID == cfg.PlayerOne {
		winner = cfg.PlayerTwo
	}
	systems.LocalDefeatedEvent.Publish(w.ecs, systems.LocalDefeated{ActorID: round.LocalID, WinnerID: winner})
}

// EndRound closes the active round, stops the spawner and schedules the next
// round. It returns false when no round was active.
func (w *World) EndRound(winner int, remote bool) bool {
	if !systems.EndRound(w.ecs, winner, remote) {
		return false
	}
	w.sched.Cancel(TimerPowerupSpawn)
	w.sched.Schedule(TimerRoundReset, cfg.Round.ResetDelay, w.startRound)
	return true
}

// StartOnline begins a networked session in which localID is simulated here
// and the other actor is a shadow fed by the peer.
func (w *World) StartOnline(localID int) {
	if localID != cfg.PlayerOne && localID != cfg.PlayerTwo {
		w.log.WithField("id", localID).Warn("ignoring online start with invalid actor id")
		return
	}
	w.startSession(cfg.ModeOnline, localID)
}

// StopOnline ends a networked session. Pending timers are dropped so nothing
// from the old session touches the world afterwards.
func (w *World) StopOnline() {
	round := systems.MustRound(w.ecs)
	if !round.Online() {
		return
	}
	w.sched.CancelAll()
	round.Active = false
	round.Mode = cfg.ModeLocal
	w.log.Info("online session stopped")
}

// StartLocal begins a fresh local session with both actors simulated here.
func (w *World) StartLocal() {
	w.startSession(cfg.ModeLocal, cfg.PlayerOne)
}

func (w *World) startSession(mode cfg.GameMode, localID int) {
	w.sched.CancelAll()

	round := systems.MustRound(w.ecs)
	*round = components.RoundData{Mode: mode, LocalID: localID}

	w.log.WithFields(logrus.Fields{"online": mode == cfg.ModeOnline, "local": localID}).Info("session started")
	w.startRound()
}

func (w *World) startRound() {
	w.sched.Cancel(TimerRoundReset)
	systems.ResetRound(w.ecs)
	w.spawnPowerup()
}

// spawnPowerup drops a powerup and re-arms itself. Once the round is over it
// neither spawns nor re-arms.
func (w *World) spawnPowerup() {
	if !systems.MustRound(w.ecs).Active {
		return
	}
	systems.SpawnPowerup(w.ecs, w.rng)
	w.sched.Schedule(TimerPowerupSpawn, cfg.Items.SpawnInterval, w.spawnPowerup)
}
