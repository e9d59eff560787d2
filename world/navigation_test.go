package world

import (
	"math/rand"
	"testing"

	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/input"
	"github.com/automoto/bloodduel/systems/factory"
	"github.com/automoto/bloodduel/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func clearPowerups(w *World) {
	w.Scheduler().Cancel(TimerPowerupSpawn)
	var all []*donburi.Entry
	tags.Powerup.Each(w.ECS(), func(e *donburi.Entry) {
		all = append(all, e)
	})
	for _, e := range all {
		factory.Destroy(w.ECS(), e)
	}
}

func TestBotClimbsToTopPlatform(t *testing.T) {
	w := New(Options{Seed: 3})
	clearPowerups(w)

	// Park actor 2 on the top platform
	obj := components.Object.Get(mustActor(t, w, cfg.PlayerTwo)).Object
	obj.X, obj.Y = 590, 210
	obj.Update()

	bot := input.NewBot(cfg.BotDifficultyHard, rand.New(rand.NewSource(1)))
	bot.SetNavGrid(input.NewNavGrid(cfg.Arena.Width, cfg.Arena.Height, w.Snapshot().Platforms))

	reachedTop := false
	for i := 0; i < 1500 && !reachedTop; i++ {
		snap := w.Snapshot()
		self, ok := snap.Actor(cfg.PlayerOne)
		require.True(t, ok)
		target, ok := snap.Actor(cfg.PlayerTwo)
		require.True(t, ok)

		view := self.BotView()
		if view.OnGround && view.Feet <= 251 {
			reachedTop = true
			break
		}
		w.Tick(map[int]input.Command{cfg.PlayerOne: bot.Next(view, target.BotView())})
	}

	assert.True(t, reachedTop, "actor 1 never stood on the top platform")
	assert.True(t, w.Round().Active)
}
