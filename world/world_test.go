package world

import (
	"context"
	"testing"
	"time"

	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/input"
	"github.com/automoto/bloodduel/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type recordingSinks struct {
	melee  []systems.MeleePerformed
	hits   []systems.HitOccurred
	shakes []systems.ScreenShakeRequested
	cues   []cfg.SoundCue
}

func (r *recordingSinks) MeleePerformed(e systems.MeleePerformed)    { r.melee = append(r.melee, e) }
func (r *recordingSinks) HitOccurred(e systems.HitOccurred)          { r.hits = append(r.hits, e) }
func (r *recordingSinks) ScreenShake(e systems.ScreenShakeRequested) { r.shakes = append(r.shakes, e) }
func (r *recordingSinks) Cue(e systems.SoundCued)                    { r.cues = append(r.cues, e.Cue) }

func mustActor(t *testing.T, w *World, id int) *donburi.Entry {
	t.Helper()
	a, ok := w.Actor(id)
	require.True(t, ok)
	return a
}

func TestNewStartsLocalRound(t *testing.T) {
	w := New(Options{Seed: 1})

	round := w.Round()
	assert.True(t, round.Active)
	assert.Equal(t, 1, round.Number)
	assert.False(t, round.Online())
	assert.True(t, w.Scheduler().Pending(TimerPowerupSpawn))
	assert.Len(t, w.Snapshot().Powerups, 1)
}

func TestRoundEndsAndResets(t *testing.T) {
	w := New(Options{Seed: 1})
	systems.TakeDamage(w.ECS(), mustActor(t, w, cfg.PlayerTwo), 500, 0, 0)

	w.Tick(nil)

	round := w.Round()
	require.False(t, round.Active)
	assert.Equal(t, cfg.PlayerOne, round.Winner)
	assert.Equal(t, [2]int{1, 0}, round.Scores)
	assert.False(t, w.Scheduler().Pending(TimerPowerupSpawn))
	assert.True(t, w.Scheduler().Pending(TimerRoundReset))

	for i := 0; i < cfg.Round.ResetDelay-2; i++ {
		w.Tick(nil)
	}
	require.False(t, w.Round().Active)

	w.Tick(nil)
	round = w.Round()
	assert.True(t, round.Active)
	assert.Equal(t, 2, round.Number)
	assert.Equal(t, [2]int{1, 0}, round.Scores)
	assert.Equal(t, 1, w.Scheduler().Len(), "only the spawner is armed")
	assert.True(t, w.Scheduler().Pending(TimerPowerupSpawn))
	assert.Equal(t, cfg.Actor.MaxHealth, components.Health.Get(mustActor(t, w, cfg.PlayerTwo)).Current)
}

func TestEndRoundIgnoredWhenInactive(t *testing.T) {
	w := New(Options{})
	require.True(t, w.EndRound(cfg.PlayerTwo, false))
	assert.False(t, w.EndRound(cfg.PlayerOne, false))
	assert.Equal(t, [2]int{0, 1}, w.Round().Scores)
}

func TestTickFeedsSinks(t *testing.T) {
	sinks := &recordingSinks{}
	w := New(Options{Render: sinks, Audio: sinks})

	w.Tick(map[int]input.Command{cfg.PlayerOne: {Attack: true}})

	require.Len(t, sinks.melee, 1)
	assert.Equal(t, cfg.PlayerOne, sinks.melee[0].ActorID)
	assert.Contains(t, sinks.cues, cfg.CueAttack)
	assert.Empty(t, sinks.hits, "actors start out of reach")
}

func TestOnlineSessionAnnouncesLocalDefeatOnce(t *testing.T) {
	w := New(Options{})
	w.StartOnline(cfg.PlayerTwo)

	round := w.Round()
	require.True(t, round.Online())
	assert.Equal(t, 1, round.Number)
	assert.True(t, components.Player.Get(mustActor(t, w, cfg.PlayerOne)).Shadow)
	assert.False(t, components.Player.Get(mustActor(t, w, cfg.PlayerTwo)).Shadow)

	var defeats []systems.LocalDefeated
	systems.LocalDefeatedEvent.Subscribe(w.ECS(), func(_ donburi.World, e systems.LocalDefeated) {
		defeats = append(defeats, e)
	})

	systems.TakeDamage(w.ECS(), mustActor(t, w, cfg.PlayerTwo), 500, 0, 0)
	w.Tick(nil)
	w.Tick(nil)

	require.Len(t, defeats, 1)
	assert.Equal(t, systems.LocalDefeated{ActorID: cfg.PlayerTwo, WinnerID: cfg.PlayerOne}, defeats[0])
	assert.True(t, w.Round().Active, "the peer's round end closes the round")

	require.True(t, w.EndRound(cfg.PlayerOne, true))
	assert.Equal(t, [2]int{1, 0}, w.Round().Scores)
}

func TestOnlineClockDoesNotRun(t *testing.T) {
	w := New(Options{})
	w.StartOnline(cfg.PlayerOne)
	w.Tick(nil)
	assert.Equal(t, cfg.Round.Duration, w.Round().Clock)
}

func TestStopOnline(t *testing.T) {
	w := New(Options{})
	w.StartOnline(cfg.PlayerOne)
	w.StopOnline()

	round := w.Round()
	assert.False(t, round.Active)
	assert.False(t, round.Online())
	assert.Equal(t, 0, w.Scheduler().Len())

	w.StartLocal()
	assert.True(t, w.Round().Active)
}

func TestStartOnlineRejectsUnknownID(t *testing.T) {
	w := New(Options{})
	w.StartOnline(3)
	assert.False(t, w.Round().Online())
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	w := New(Options{})
	p1 := mustActor(t, w, cfg.PlayerOne)
	require.True(t, systems.Pickup(p1, cfg.ItemBloodOrb))

	snap := w.Snapshot()
	view, ok := snap.Actor(cfg.PlayerOne)
	require.True(t, ok)
	require.Len(t, view.Inventory, 1)
	view.Inventory[0].Count = 99

	assert.Equal(t, 1, components.Inventory.Get(p1).Count(cfg.ItemBloodOrb))
	assert.Len(t, snap.Platforms, len(cfg.Arena.Platforms))
	assert.Len(t, snap.Actors, 2)

	bot := view.BotView()
	assert.InDelta(t, 210, bot.X, 1e-9)
	assert.InDelta(t, 1, bot.HealthFrac, 1e-9)
	assert.True(t, bot.HasItem)
}

func TestLoopStepRunsHooksInOrder(t *testing.T) {
	w := New(Options{})
	var order []string
	l := NewLoop(w, 60, CommandSourceFunc(func(*World) map[int]input.Command {
		order = append(order, "source")
		return nil
	}))
	l.BeforeTick(func(*World) { order = append(order, "before") })
	l.AfterTick(func(w *World) { order = append(order, "after") })

	l.Step()

	assert.Equal(t, []string{"before", "source", "after"}, order)
	assert.Equal(t, uint64(1), w.TickCount())
}

func TestLoopRunStops(t *testing.T) {
	l := NewLoop(New(Options{}), 1000, nil)
	l.Stop()
	l.Stop()
	assert.NoError(t, l.Run(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	l2 := NewLoop(New(Options{}), 1000, nil)
	assert.ErrorIs(t, l2.Run(ctx), context.DeadlineExceeded)
}
