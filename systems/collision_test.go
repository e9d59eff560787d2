package systems

import (
	"testing"

	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/stretchr/testify/assert"
)

func TestLandOnPlatformTop(t *testing.T) {
	w, p1, _ := newTestWorld(t)
	place(p1, 350, 385)
	physics := components.Physics.Get(p1)
	physics.SpeedY = 5

	ResolvePlatforms(w, p1)

	assert.Equal(t, 360.0, components.Object.Get(p1).Y)
	assert.Equal(t, 0.0, physics.SpeedY)
	assert.True(t, physics.OnGround)
}

func TestHeadHitsCeiling(t *testing.T) {
	w, p1, _ := newTestWorld(t)
	place(p1, 350, 415)
	physics := components.Physics.Get(p1)
	physics.SpeedY = -3

	ResolvePlatforms(w, p1)

	assert.Equal(t, 420.0, components.Object.Get(p1).Y)
	assert.Equal(t, 0.0, physics.SpeedY)
	assert.False(t, physics.OnGround)
}

func TestResolutionNeedsVelocityIntoSide(t *testing.T) {
	w, p1, _ := newTestWorld(t)
	place(p1, 350, 415)
	physics := components.Physics.Get(p1)
	physics.SpeedY = 1

	ResolvePlatforms(w, p1)

	assert.Equal(t, 415.0, components.Object.Get(p1).Y, "moving away from the shallow side")
	assert.Equal(t, 1.0, physics.SpeedY)
	assert.False(t, physics.OnGround)
}

func TestNoWallSlideWhileRising(t *testing.T) {
	w, p1, _ := newTestWorld(t)
	place(p1, 283, 395)
	physics := components.Physics.Get(p1)
	physics.SpeedX = 2
	physics.SpeedY = -1

	ResolvePlatforms(w, p1)

	assert.Equal(t, 280.0, components.Object.Get(p1).X)
	assert.False(t, physics.WallSliding)
}

func TestTouchingEdgeIsNotOverlap(t *testing.T) {
	w, p1, _ := newTestWorld(t)
	place(p1, 100, 510)
	physics := components.Physics.Get(p1)
	physics.SpeedY = 1

	ResolvePlatforms(w, p1)

	assert.Equal(t, 510.0, components.Object.Get(p1).Y)
	assert.False(t, physics.OnGround)
}

func TestPlatformsResolveInInsertionOrder(t *testing.T) {
	upper := cfg.Rect{X: 0, Y: 500, W: 100, H: 20}
	lower := cfg.Rect{X: 0, Y: 505, W: 100, H: 20}

	tests := []struct {
		name      string
		platforms []cfg.Rect
		wantY     float64
	}{
		// The second platform no longer overlaps once the first has resolved
		{"upper first", []cfg.Rect{upper, lower}, 460},
		// The upper one still overlaps but vy is now zero, so it cannot resolve
		{"lower first", []cfg.Rect{lower, upper}, 465},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, p1 := newArenaWorld(t, tt.platforms...)
			place(p1, 40, 470)
			physics := components.Physics.Get(p1)
			physics.SpeedY = 5

			ResolvePlatforms(w, p1)

			assert.Equal(t, tt.wantY, components.Object.Get(p1).Y)
			assert.True(t, physics.OnGround)
			assert.Equal(t, 0.0, physics.SpeedY)
		})
	}
}

func TestGroundedAtSeamIsNotWallSliding(t *testing.T) {
	wall := cfg.Rect{X: 100, Y: 400, W: 20, H: 150}
	ground := cfg.Rect{X: 0, Y: 550, W: 1200, H: 50}
	w, p1 := newArenaWorld(t, wall, ground)

	// Falling into the corner right of the wall
	place(p1, 118, 512)
	physics := components.Physics.Get(p1)
	physics.SpeedX = -2
	physics.SpeedY = 2

	ResolvePlatforms(w, p1)

	obj := components.Object.Get(p1)
	assert.Equal(t, 120.0, obj.X)
	assert.Equal(t, 510.0, obj.Y)
	assert.True(t, physics.OnGround)
	assert.False(t, physics.WallSliding)
	assert.Equal(t, 0, physics.WallSlideDir)
	assert.Equal(t, cfg.StateGrounded, State(p1))
}

func TestClampToWorld(t *testing.T) {
	w, p1, _ := newTestWorld(t)
	physics := components.Physics.Get(p1)

	place(p1, -5, 510)
	physics.SpeedX = -3
	ClampToWorld(w, p1)
	assert.Equal(t, 0.0, components.Object.Get(p1).X)
	assert.Equal(t, 0.0, physics.SpeedX)

	place(p1, 1190, 510)
	physics.SpeedX = 3
	ClampToWorld(w, p1)
	assert.Equal(t, 1180.0, components.Object.Get(p1).X)
	assert.Equal(t, 0.0, physics.SpeedX)
}
