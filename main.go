package main

import (
	"context"
	"errors"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/bloodduel/assets"
	"github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/input"
	"github.com/automoto/bloodduel/logger"
	"github.com/automoto/bloodduel/network"
	"github.com/automoto/bloodduel/scoreboard"
	"github.com/automoto/bloodduel/shared/leveldata"
	"github.com/automoto/bloodduel/systems"
	"github.com/automoto/bloodduel/world"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

const appName = "bloodduel"

// logSink writes discrete world events to the log. It stands in for a renderer
// and mixer when running headless.
type logSink struct {
	log *logrus.Entry
}

func (s logSink) MeleePerformed(e systems.MeleePerformed) {
	s.log.WithFields(logrus.Fields{"actor": e.ActorID, "combo": e.ComboCount, "type": e.Directive.String()}).Trace("melee")
}

func (s logSink) HitOccurred(e systems.HitOccurred) {
	s.log.WithFields(logrus.Fields{"attacker": e.AttackerID, "defender": e.DefenderID, "damage": e.Damage}).Trace("hit")
}

func (s logSink) ScreenShake(e systems.ScreenShakeRequested) {
	s.log.WithFields(logrus.Fields{"power": e.Intensity, "ticks": e.Duration}).Trace("shake")
}

func (s logSink) Cue(e systems.SoundCued) {
	s.log.WithFields(logrus.Fields{"actor": e.ActorID, "cue": e.Cue.String()}).Trace("sound")
}

// botSource drives every locally simulated actor with a bot. Bots share one
// rng, so they are polled in id order.
type botSource struct {
	bots map[int]*input.Bot
}

func newBotSource(difficulty config.BotDifficulty, seed int64, nav *input.NavGrid) *botSource {
	rng := rand.New(rand.NewSource(seed))
	s := &botSource{bots: map[int]*input.Bot{
		config.PlayerOne: input.NewBot(difficulty, rng),
		config.PlayerTwo: input.NewBot(difficulty, rng),
	}}
	for _, bot := range s.bots {
		bot.SetNavGrid(nav)
	}
	return s
}

func (s *botSource) Commands(w *world.World) map[int]input.Command {
	snap := w.Snapshot()
	round := snap.Round

	cmds := make(map[int]input.Command, len(s.bots))
	for _, id := range []int{config.PlayerOne, config.PlayerTwo} {
		if round.Online() && id != round.LocalID {
			continue
		}
		self, ok := snap.Actor(id)
		if !ok {
			continue
		}
		target, ok := snap.Actor(opponentOf(id))
		if !ok {
			continue
		}
		cmds[id] = s.bots[id].Next(self.BotView(), target.BotView())
	}
	return cmds
}

func opponentOf(id int) int {
	if id == config.PlayerOne {
		return config.PlayerTwo
	}
	return config.PlayerOne
}

func main() {
	envErr := config.LoadEnv()
	logger.Init()
	log := logger.For("main")
	if envErr != nil {
		log.WithError(envErr).Warn("ignoring .env")
	}

	online := flag.Bool("online", false, "fight a remote peer through the relay")
	relay := flag.String("relay", config.EnvString("RELAY_ADDR", config.Network.DefaultAddr), "relay address")
	name := flag.String("name", config.EnvString("PLAYER_NAME", "player"), "name sent to the relay")
	ticks := flag.Int("ticks", 0, "stop after this many ticks (0 runs until interrupted)")
	seed := flag.Int64("seed", int64(config.EnvInt("SEED", int(time.Now().UnixNano()&0x7fffffff))), "random seed")
	difficulty := flag.String("difficulty", config.EnvString("BOT_DIFFICULTY", "normal"), "bot difficulty: easy, normal or hard")
	record := flag.String("record", config.EnvString("RECORD_PATH", ""), "write network traffic to this file")
	arenaPath := flag.String("arena", assets.DefaultArena, "arena TMX path inside the embedded levels")
	tickRate := flag.Int("rate", config.EnvInt("TICK_RATE", config.TickRate), "ticks per second")
	flag.Parse()

	arena, err := leveldata.LoadArena(assets.Levels(), *arenaPath)
	if err != nil {
		log.WithError(err).WithField("arena", *arenaPath).Warn("using default arena")
		arena = leveldata.DefaultArena()
	}

	sink := logSink{log: logger.For("events")}
	w := world.New(world.Options{
		Arena:  arena,
		Seed:   *seed,
		Render: sink,
		Audio:  sink,
	})

	store, err := scoreboard.OpenStore(appName)
	if err != nil {
		log.WithError(err).Warn("scoreboard will not be saved")
	}
	board, err := scoreboard.Load(store)
	if err != nil {
		log.WithError(err).Warn("starting a fresh scoreboard")
	}
	systems.RoundEndedEvent.Subscribe(w.ECS(), func(_ donburi.World, e systems.RoundEnded) {
		board.Record(e.Winner)
		if err := scoreboard.Save(store, board); err != nil {
			log.WithError(err).Warn("failed to save scoreboard")
		}
		log.WithFields(logrus.Fields{
			"round":  e.Number,
			"winner": e.Winner,
			"score":  e.Scores,
			"total":  board.Wins,
		}).Info("round over")
	})

	nav := input.NewNavGrid(arena.Width, arena.Height, w.Snapshot().Platforms)
	loop := world.NewLoop(w, *tickRate, newBotSource(config.ParseBotDifficulty(*difficulty), *seed, nav))

	if *online {
		var recorder *network.Recorder
		if *record != "" {
			f, err := os.Create(*record)
			if err != nil {
				log.WithError(err).Fatal("failed to create recording")
			}
			defer f.Close()
			recorder = network.NewRecorder(f)
		}

		client := network.NewClient()
		bridge := network.NewBridge(w, recorder)
		client.Connect(*relay, *name)
		defer client.Disconnect()

		loop.BeforeTick(func(*world.World) { bridge.ApplyAll(client.Drain()) })
		loop.AfterTick(func(*world.World) {
			if err := bridge.Flush(client); err != nil && !errors.Is(err, network.ErrNotConnected) {
				log.WithError(err).Warn("failed to send")
			}
		})
	}

	if *ticks > 0 {
		remaining := *ticks
		loop.AfterTick(func(*world.World) {
			remaining--
			if remaining == 0 {
				loop.Stop()
			}
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("game loop failed")
	}

	log.WithFields(logrus.Fields{"wins": board.Wins, "rounds": board.Rounds, "leader": board.Leader()}).Info("session over")
}
