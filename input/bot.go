package input

import (
	"math"
	"math/rand"

	cfg "github.com/automoto/bloodduel/config"
)

// BotState is the bot's current intent.
type BotState int

const (
	BotStateIdle BotState = iota
	BotStateChase
	BotStateAttack
	BotStateRetreat
)

// BotView is the read-only slice of actor state a bot decides from.
type BotView struct {
	X, Y        float64 // center
	Feet        float64 // bottom edge
	VY          float64
	HealthFrac  float64 // 0..1
	OnGround    bool
	WallSliding bool
	HasItem     bool
}

// Bot generates commands for one actor from snapshots of both actors.
type Bot struct {
	State BotState

	tuning         cfg.BotDifficultyConfig
	rng            *rand.Rand
	decisionTimer  int
	attackCooldown int
	jumpCooldown   int
	last           Command

	nav         *NavGrid
	path        []*NavNode
	from        *NavNode
	repathTimer int
	cleared     bool // airborne above the ledge of the current climb
}

// NewBot returns a bot at the given difficulty driven by rng. A nil rng gets
// a fixed seed so replays stay deterministic.
func NewBot(difficulty cfg.BotDifficulty, rng *rand.Rand) *Bot {
	tuning, ok := cfg.Bot.Difficulties[difficulty]
	if !ok {
		tuning = cfg.Bot.Difficulties[cfg.BotDifficultyNormal]
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(42))
	}
	return &Bot{tuning: tuning, rng: rng}
}

// SetNavGrid lets the bot route over platforms. With a nil grid it chases in
// a straight line.
func (b *Bot) SetNavGrid(g *NavGrid) {
	b.nav = g
	b.path = nil
	b.from = nil
	b.repathTimer = 0
}

// Path returns the waypoints the bot has yet to reach.
func (b *Bot) Path() []*NavNode {
	return b.path
}

// Next returns the command for this tick.
func (b *Bot) Next(self, target BotView) Command {
	if b.decisionTimer > 0 {
		b.decisionTimer--
	}
	if b.attackCooldown > 0 {
		b.attackCooldown--
	}
	if b.jumpCooldown > 0 {
		b.jumpCooldown--
	}
	if b.repathTimer > 0 {
		b.repathTimer--
	}

	dx := target.X - self.X
	dy := target.Y - self.Y
	dist := math.Hypot(dx, dy)

	if b.decisionTimer <= 0 {
		b.decide(self, target, dist)
		b.decisionTimer = b.tuning.ReactionDelay
	}

	var cmd Command
	switch b.State {
	case BotStateChase:
		cmd = b.chase(self, target, dx, dy)
	case BotStateAttack:
		cmd = b.attack(self, dx, dy, dist)
	case BotStateRetreat:
		cmd = b.retreat(self, dx, dist)
	}

	// Buttons are edge-triggered downstream; never hold one across ticks.
	if b.last.Attack {
		cmd.Attack = false
	}
	if b.last.Item {
		cmd.Item = false
	}
	if b.last.Jump {
		cmd.Jump = false
	}
	b.last = cmd
	return cmd.Normalize()
}

func (b *Bot) decide(self, target BotView, dist float64) {
	switch {
	case target.HealthFrac <= 0:
		b.State = BotStateIdle
	case self.HealthFrac < b.tuning.RetreatThreshold:
		b.State = BotStateRetreat
	case dist < b.tuning.AttackRange:
		b.State = BotStateAttack
	case dist < b.tuning.ChaseRange:
		b.State = BotStateChase
	default:
		b.State = BotStateIdle
	}
}

func (b *Bot) chase(self, target BotView, dx, dy float64) Command {
	if cmd, ok := b.follow(self, target); ok {
		if self.HasItem && b.rng.Float64() < b.tuning.ItemChance {
			cmd.Item = true
		}
		return cmd
	}

	var cmd Command
	if dx > 10 {
		cmd.X = 1
	} else if dx < -10 {
		cmd.X = -1
	}

	// Jump if target is significantly above us
	if dy < -60 && self.OnGround && b.jumpCooldown <= 0 {
		cmd.Jump = true
		b.jumpCooldown = 45
	}

	// Wall jump if wall sliding
	if self.WallSliding && b.jumpCooldown <= 0 {
		cmd.Jump = true
		b.jumpCooldown = 30
	}

	if b.rng.Float64() < b.tuning.DashChance {
		cmd.Dash = true
	}
	if self.HasItem && b.rng.Float64() < b.tuning.ItemChance {
		cmd.Item = true
	}
	return cmd
}

func (b *Bot) attack(self BotView, dx, dy, dist float64) Command {
	var cmd Command
	if dist > 40 {
		cmd.X = math.Copysign(1, dx)
	}
	if b.attackCooldown > 0 {
		return cmd
	}

	switch {
	case dy < -30:
		cmd.Y = -1 // launcher
	case dy > 30 && !self.OnGround:
		cmd.Y = 1 // meteor
	}
	cmd.Attack = true
	b.attackCooldown = 20 + b.tuning.ReactionDelay/2
	return cmd
}

func (b *Bot) retreat(self BotView, dx, dist float64) Command {
	var cmd Command
	if dist < 120 {
		cmd.X = -math.Copysign(1, dx)
		if self.OnGround && b.jumpCooldown <= 0 {
			cmd.Jump = true
			b.jumpCooldown = 40
		}
	} else if self.OnGround {
		cmd.Block = true
	}
	if self.HasItem {
		cmd.Item = true
	}
	return cmd
}

// follow steers along the nav path toward target. It reports false when there
// is no grid, no route, or the bot already stands on the target's node.
func (b *Bot) follow(self, target BotView) (Command, bool) {
	if b.nav == nil {
		return Command{}, false
	}
	if self.OnGround {
		// Landing ends a climb, so the old route is stale
		if b.cleared || b.repathTimer <= 0 || len(b.path) == 0 {
			b.replan(self, target)
		}
		b.cleared = false
	}

	for len(b.path) > 0 && self.OnGround && b.reached(self, b.path[0]) {
		b.from = b.path[0]
		b.path = b.path[1:]
	}
	if len(b.path) == 0 {
		return Command{}, false
	}

	pf := cfg.Pathfinding
	next := b.path[0]
	var cmd Command

	if b.from == nil || next.Floor >= b.from.Floor-b.nav.CellSize/2 {
		cmd.X = steer(self.X, next.CenterX(), pf.HoldBand)
		return cmd, true
	}

	// Climb: rise at the take-off point, then drift over the ledge
	if !self.OnGround && self.Feet <= next.Floor {
		b.cleared = true
	}
	if b.cleared {
		cmd.X = steer(self.X, next.CenterX(), pf.HoldBand)
		return cmd, true
	}

	takeoff := b.from.CenterX() - math.Copysign(b.nav.CellSize/2, next.CenterX()-b.from.CenterX())
	cmd.X = steer(self.X, takeoff, pf.HoldBand)
	switch {
	case self.OnGround:
		cmd.Jump = math.Abs(self.X-takeoff) <= pf.HoldBand
	case self.VY > -pf.ApexSpeed:
		cmd.Jump = true
	}
	return cmd, true
}

func (b *Bot) replan(self, target BotView) {
	b.repathTimer = cfg.Pathfinding.RepathInterval
	b.path = b.nav.FindPath(self.X, self.Feet, target.X, target.Feet)
	b.from = nil
	if len(b.path) > 0 {
		b.from = b.path[0]
		b.path = b.path[1:]
	}
}

func (b *Bot) reached(self BotView, n *NavNode) bool {
	return math.Abs(self.X-n.CenterX()) <= cfg.Pathfinding.Arrive &&
		math.Abs(self.Feet-n.Floor) <= b.nav.CellSize/2
}

func steer(x, to, band float64) float64 {
	switch {
	case to-x > band:
		return 1
	case x-to > band:
		return -1
	}
	return 0
}
