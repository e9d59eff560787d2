// Package scoreboard keeps the lifetime win tally across sessions.
package scoreboard

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/logger"
	"github.com/quasilyte/gdata"
)

const itemKey = "scoreboard"

// Store is the persistence backend. *gdata.Manager implements it.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Scoreboard is the win tally stored on disk
type Scoreboard struct {
	Wins   [2]int `json:"wins"`
	Rounds int    `json:"rounds"`
}

// Record credits a round to winnerID. Unknown ids only count the round.
func (s *Scoreboard) Record(winnerID int) {
	s.Rounds++
	if winnerID == cfg.PlayerOne || winnerID == cfg.PlayerTwo {
		s.Wins[winnerID-1]++
	}
}

// Leader returns the actor with more wins, or 0 on a tie.
func (s *Scoreboard) Leader() int {
	switch {
	case s.Wins[0] > s.Wins[1]:
		return cfg.PlayerOne
	case s.Wins[1] > s.Wins[0]:
		return cfg.PlayerTwo
	}
	return 0
}

// OpenStore opens the gdata store for appName.
func OpenStore(appName string) (Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open scoreboard store: %w", err)
	}
	return m, nil
}

// Load reads the tally. A nil store or a missing item yields an empty
// scoreboard.
func Load(store Store) (*Scoreboard, error) {
	if store == nil {
		return &Scoreboard{}, nil
	}

	data, err := store.LoadItem(itemKey)
	if err != nil {
		return &Scoreboard{}, fmt.Errorf("load scoreboard: %w", err)
	}
	if data == nil {
		// Nothing saved yet
		return &Scoreboard{}, nil
	}

	var s Scoreboard
	if err := json.Unmarshal(data, &s); err != nil {
		logger.For("scoreboard").WithError(err).Warn("discarding unreadable scoreboard")
		return &Scoreboard{}, fmt.Errorf("parse scoreboard: %w", err)
	}
	return &s, nil
}

// Save writes the tally. A nil store makes it a no-op.
func Save(store Store, s *Scoreboard) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize scoreboard: %w", err)
	}
	if err := store.SaveItem(itemKey, data); err != nil {
		return fmt.Errorf("save scoreboard: %w", err)
	}
	return nil
}
