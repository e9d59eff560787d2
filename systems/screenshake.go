package systems

import (
	"math"

	"github.com/automoto/bloodduel/components"
	cfg "github.com/automoto/bloodduel/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// TriggerScreenShake starts a shake. A running shake is only replaced by a
// stronger one.
func TriggerScreenShake(w donburi.World, intensity float64, duration int) {
	entry, ok := components.ScreenShake.First(w)
	if !ok || duration <= 0 || intensity <= 0 {
		return
	}
	intensity = math.Min(intensity, cfg.ScreenShake.MaxPower)

	shake := components.ScreenShake.Get(entry)
	if shake.Active() && intensity <= shake.Intensity {
		return
	}
	shake.Intensity = intensity
	shake.Duration = duration
	shake.Elapsed = 0
	shake.Current = intensity
	shake.Tween = gween.New(float32(intensity), 0, float32(duration), ease.OutQuad)
}

// UpdateScreenShake advances the shake by one tick.
func UpdateScreenShake(w donburi.World) {
	entry, ok := components.ScreenShake.First(w)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	if !shake.Active() {
		return
	}

	shake.Elapsed++
	current, finished := shake.Tween.Update(1)
	shake.Current = float64(current)

	// Apply oscillating offset using sine/cosine for smooth shake
	shake.OffsetX = math.Sin(float64(shake.Elapsed)*1.1) * shake.Current
	shake.OffsetY = math.Cos(float64(shake.Elapsed)*1.3) * shake.Current

	if finished {
		*shake = components.ScreenShakeData{}
	}
}
