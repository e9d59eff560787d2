package world

import "github.com/automoto/bloodduel/systems"

// RenderSink receives discrete visual events after each tick.
type RenderSink interface {
	MeleePerformed(e systems.MeleePerformed)
	HitOccurred(e systems.HitOccurred)
	ScreenShake(e systems.ScreenShakeRequested)
}

// AudioSink receives fire-and-forget sound cues after each tick.
type AudioSink interface {
	Cue(e systems.SoundCued)
}
