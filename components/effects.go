package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks the active screen shake request. The tween runs the
// magnitude from Intensity down to zero over Duration ticks.
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // ticks
	Elapsed   int
	Current   float64 // magnitude this tick

	// Offset a renderer adds to its camera this tick
	OffsetX, OffsetY float64

	Tween *gween.Tween
}

// Active reports whether a shake is running.
func (s *ScreenShakeData) Active() bool {
	return s.Tween != nil
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
