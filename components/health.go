package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// Clamp pulls Current back into [0, Max].
func (h *HealthData) Clamp() {
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

var Health = donburi.NewComponentType[HealthData]()
