package components

import (
	cfg "github.com/automoto/bloodduel/config"
	"github.com/yohamta/donburi"
)

// RoundData stores the current round state and the session score.
// This is a singleton component - only one round exists at a time.
type RoundData struct {
	Mode    cfg.GameMode
	LocalID int // actor simulated from local input in online mode

	Active bool
	Number int
	Clock  int // ticks left before the round times out

	Scores [2]int // wins for actor 1 and actor 2
	Winner int    // 0 while undecided

	// RoundEndSent guards the one-shot roundEnd message in online mode.
	RoundEndSent bool
}

// AddWin credits a round to actor id.
func (r *RoundData) AddWin(id int) {
	if id == cfg.PlayerOne || id == cfg.PlayerTwo {
		r.Scores[id-1]++
	}
}

// Online reports whether the round runs against a remote peer.
func (r RoundData) Online() bool {
	return r.Mode == cfg.ModeOnline
}

var Round = donburi.NewComponentType[RoundData]()
