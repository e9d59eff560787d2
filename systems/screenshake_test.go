package systems

import (
	"testing"

	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenShakeDecaysAndStops(t *testing.T) {
	w, _, _ := newTestWorld(t)
	shake := components.ScreenShake.Get(components.ScreenShake.MustFirst(w))

	TriggerScreenShake(w, 10, 20)
	require.True(t, shake.Active())

	UpdateScreenShake(w)
	assert.Less(t, shake.Current, 10.0)
	assert.Greater(t, shake.Current, 0.0)
	assert.LessOrEqual(t, shake.OffsetX*shake.OffsetX, 100.0)

	for i := 1; i < 20; i++ {
		UpdateScreenShake(w)
	}
	assert.False(t, shake.Active())
	assert.Equal(t, 0.0, shake.OffsetX)
	assert.Equal(t, 0.0, shake.OffsetY)
}

func TestWeakerShakeDoesNotReplace(t *testing.T) {
	w, _, _ := newTestWorld(t)
	shake := components.ScreenShake.Get(components.ScreenShake.MustFirst(w))

	TriggerScreenShake(w, 10, 20)
	TriggerScreenShake(w, 5, 60)
	assert.Equal(t, 20, shake.Duration)

	TriggerScreenShake(w, 100, 5)
	assert.Equal(t, cfg.ScreenShake.MaxPower, shake.Intensity)
	assert.Equal(t, 5, shake.Duration)
}

func TestZeroShakeIgnored(t *testing.T) {
	w, _, _ := newTestWorld(t)
	shake := components.ScreenShake.Get(components.ScreenShake.MustFirst(w))

	TriggerScreenShake(w, 0, 20)
	TriggerScreenShake(w, 5, 0)
	assert.False(t, shake.Active())
}
