package input

import (
	"math/rand"
	"testing"

	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultNavGrid() *NavGrid {
	platforms := make([]gamemath.Rect, 0, len(cfg.Arena.Platforms))
	for _, p := range cfg.Arena.Platforms {
		platforms = append(platforms, gamemath.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H})
	}
	return NewNavGrid(cfg.Arena.Width, cfg.Arena.Height, platforms)
}

func TestNavGridStandableCells(t *testing.T) {
	g := defaultNavGrid()
	require.Equal(t, 60, g.Width)
	require.Equal(t, 30, g.Height)

	tests := []struct {
		name  string
		x, y  int
		floor float64
	}{
		{"ground", 10, 26, 550},
		{"ground under a platform", 15, 26, 550},
		{"side platform", 15, 19, 400},
		{"top platform", 25, 11, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := g.Nodes[tt.y][tt.x]
			require.NotNil(t, n)
			assert.Equal(t, tt.floor, n.Floor)
		})
	}

	assert.Nil(t, g.Nodes[20][15], "inside the side platform")
	assert.Nil(t, g.Nodes[15][20], "mid-air")
	assert.Nil(t, g.Nodes[19][14], "past the platform edge")
}

func TestFindPathClimbsTiers(t *testing.T) {
	g := defaultNavGrid()

	path := g.FindPath(210, 550, 600, 250)
	require.NotEmpty(t, path)
	assert.Equal(t, 550.0, path[0].Floor)
	assert.Equal(t, 250.0, path[len(path)-1].Floor)
	assert.InDelta(t, 600, path[len(path)-1].CenterX(), g.CellSize)

	visitedSide := false
	for i := 1; i < len(path); i++ {
		rise := path[i-1].Floor - path[i].Floor
		assert.LessOrEqual(t, rise, MaxRise(), "step %d", i)
		if path[i].Floor == 400 {
			visitedSide = true
		}
	}
	assert.True(t, visitedSide, "the top is only reachable through a side platform")
}

func TestFindPathDropsDown(t *testing.T) {
	g := defaultNavGrid()

	path := g.FindPath(600, 250, 100, 550)
	require.NotEmpty(t, path)
	assert.Equal(t, 250.0, path[0].Floor)
	assert.Equal(t, 550.0, path[len(path)-1].Floor)
}

func TestFindPathLedgeTooHigh(t *testing.T) {
	g := NewNavGrid(1200, 600, []gamemath.Rect{
		{X: 0, Y: 550, W: 1200, H: 50},
		{X: 500, Y: 300, W: 200, H: 20},
	})

	require.NotNil(t, g.Nearest(600, 300))
	assert.Nil(t, g.FindPath(210, 550, 600, 300))
}

func TestNearestPrefersFloorBelow(t *testing.T) {
	g := defaultNavGrid()

	assert.Equal(t, 550.0, g.Nearest(310, 450).Floor, "falling under a platform")
	assert.Equal(t, 400.0, g.Nearest(310, 400).Floor)
}

func newClimbingBot(t *testing.T) *Bot {
	t.Helper()
	b := NewBot(cfg.BotDifficultyNormal, rand.New(rand.NewSource(1)))
	b.SetNavGrid(defaultNavGrid())
	return b
}

var topTarget = BotView{X: 600, Y: 230, Feet: 250, HealthFrac: 1, OnGround: true}

func TestBotFollowsPathTowardTakeoff(t *testing.T) {
	b := newClimbingBot(t)
	self := BotView{X: 150, Y: 530, Feet: 550, HealthFrac: 1, OnGround: true}

	cmd := b.Next(self, topTarget)

	assert.Equal(t, BotStateChase, b.State)
	assert.Equal(t, 1.0, cmd.X)
	assert.False(t, cmd.Jump)
	require.NotEmpty(t, b.Path())
	assert.Equal(t, 250.0, b.Path()[len(b.Path())-1].Floor)
}

func TestBotClimbsOntoLedge(t *testing.T) {
	b := newClimbingBot(t)

	// Standing at the take-off point left of the side platform
	cmd := b.Next(BotView{X: 281, Y: 530, Feet: 550, HealthFrac: 1, OnGround: true}, topTarget)
	assert.True(t, cmd.Jump)
	assert.Equal(t, 0.0, cmd.X)

	// Rising: hold position, no second jump yet
	cmd = b.Next(BotView{X: 282, Y: 490, Feet: 510, VY: -4, HealthFrac: 1}, topTarget)
	assert.False(t, cmd.Jump)
	assert.Equal(t, 0.0, cmd.X)

	// Near the apex and still below the ledge: double jump
	cmd = b.Next(BotView{X: 282, Y: 436, Feet: 456, VY: -0.25, HealthFrac: 1}, topTarget)
	assert.True(t, cmd.Jump)

	// Above the ledge: drift over it
	cmd = b.Next(BotView{X: 282, Y: 375, Feet: 395, VY: -1, HealthFrac: 1}, topTarget)
	assert.Equal(t, 1.0, cmd.X)
	assert.False(t, cmd.Jump)

	// Still drifting while falling back toward the ledge
	cmd = b.Next(BotView{X: 295, Y: 382, Feet: 402, VY: 1, HealthFrac: 1}, topTarget)
	assert.Equal(t, 1.0, cmd.X)
}

func TestBotWithoutGridChasesDirectly(t *testing.T) {
	b := NewBot(cfg.BotDifficultyNormal, rand.New(rand.NewSource(1)))
	cmd := b.Next(BotView{X: 150, Y: 530, Feet: 550, HealthFrac: 1, OnGround: true}, topTarget)

	assert.Equal(t, BotStateChase, b.State)
	assert.Equal(t, 1.0, cmd.X)
	assert.Empty(t, b.Path())
}
