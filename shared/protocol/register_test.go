package protocol

import (
	"encoding/json"
	"testing"

	"github.com/automoto/bloodduel/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryKindDecodes(t *testing.T) {
	msgs := []any{
		messages.PlayerUpdate{PlayerID: 1, X: messages.F64(3)},
		messages.MeleeEvent{PlayerID: 2, ComboCount: 1, Type: "UP"},
		messages.ProjectileSpawned{X: 1, Y: 2, VX: -10, Owner: 2, Type: "BOLT"},
		messages.DamageEvent{PlayerID: 1, Damage: 15, KnockbackDir: -1, LaunchY: 0.5},
		messages.RoundEnd{WinnerID: 2},
		messages.FindMatch{Version: Version, PlayerName: "p"},
		messages.MatchFound{RoomID: "room-1", PlayerID: 1, OpponentID: 2},
		messages.MatchRejected{Reason: "version"},
		messages.OpponentDisconnected{RoomID: "room-1"},
	}

	for _, msg := range msgs {
		kind, ok := KindOf(msg)
		require.True(t, ok, "%T", msg)

		raw, err := json.Marshal(msg)
		require.NoError(t, err)
		got, err := Decode(kind, func(v any) error { return json.Unmarshal(raw, v) })
		require.NoError(t, err)
		assert.Equal(t, msg, got)
	}
}

func TestUnknownKind(t *testing.T) {
	_, ok := KindOf(struct{}{})
	assert.False(t, ok)

	_, err := Decode("nope", func(any) error { return nil })
	assert.Error(t, err)
}
