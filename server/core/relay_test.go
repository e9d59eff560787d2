package core

import (
	"errors"
	"testing"

	"github.com/automoto/bloodduel/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePeer struct {
	id   string
	got  []any
	fail bool
}

func (p *fakePeer) Id() string { return p.id }

func (p *fakePeer) SendMessage(msg any) error {
	if p.fail {
		return errors.New("closed")
	}
	p.got = append(p.got, msg)
	return nil
}

func pair(t *testing.T, r *Relay) (*fakePeer, *fakePeer) {
	t.Helper()
	a := &fakePeer{id: "a"}
	b := &fakePeer{id: "b"}
	r.Join(a, messages.FindMatch{Version: "1"})
	r.Join(b, messages.FindMatch{Version: "1"})
	require.Equal(t, 1, r.Rooms())
	return a, b
}

func TestPairsInArrivalOrder(t *testing.T) {
	r := NewRelay("1")
	a := &fakePeer{id: "a"}
	b := &fakePeer{id: "b"}

	r.Join(a, messages.FindMatch{Version: "1"})
	assert.True(t, r.Waiting())
	assert.Empty(t, a.got)

	r.Join(b, messages.FindMatch{Version: "1"})
	assert.False(t, r.Waiting())
	assert.Equal(t, 1, r.Rooms())
	assert.Equal(t, 2, r.PeerCount())

	assert.Equal(t, []any{messages.MatchFound{RoomID: "room-1", PlayerID: 1, OpponentID: 2}}, a.got)
	assert.Equal(t, []any{messages.MatchFound{RoomID: "room-1", PlayerID: 2, OpponentID: 1}}, b.got)
}

func TestDuplicateJoinIgnored(t *testing.T) {
	r := NewRelay("")
	a := &fakePeer{id: "a"}
	r.Join(a, messages.FindMatch{})
	r.Join(a, messages.FindMatch{})

	assert.True(t, r.Waiting())
	assert.Equal(t, 0, r.Rooms())
}

func TestVersionMismatchRejected(t *testing.T) {
	r := NewRelay("1")
	a := &fakePeer{id: "a"}
	r.Join(a, messages.FindMatch{Version: "0"})

	assert.False(t, r.Waiting())
	require.Len(t, a.got, 1)
	assert.IsType(t, messages.MatchRejected{}, a.got[0])
}

func TestForwardGoesToOpponent(t *testing.T) {
	r := NewRelay("1")
	a, b := pair(t, r)
	a.got, b.got = nil, nil

	update := messages.PlayerUpdate{PlayerID: 1, X: messages.F64(3)}
	r.Forward(a, update)
	r.Forward(b, messages.DamageEvent{PlayerID: 1, Damage: 15})

	assert.Equal(t, []any{update}, b.got)
	assert.Equal(t, []any{messages.DamageEvent{PlayerID: 1, Damage: 15}}, a.got)
}

func TestRoundEndGoesToBoth(t *testing.T) {
	r := NewRelay("1")
	a, b := pair(t, r)
	a.got, b.got = nil, nil

	r.Forward(b, messages.RoundEnd{WinnerID: 1})

	assert.Equal(t, []any{messages.RoundEnd{WinnerID: 1}}, a.got)
	assert.Equal(t, []any{messages.RoundEnd{WinnerID: 1}}, b.got)
}

func TestForwardFromUnpairedDropped(t *testing.T) {
	r := NewRelay("1")
	a := &fakePeer{id: "a"}
	r.Join(a, messages.FindMatch{Version: "1"})
	a.got = nil

	r.Forward(a, messages.RoundEnd{WinnerID: 1})
	assert.Empty(t, a.got)
}

func TestLeaveNotifiesOpponent(t *testing.T) {
	r := NewRelay("1")
	a, b := pair(t, r)
	b.got = nil

	r.Leave(a)

	assert.Equal(t, 0, r.Rooms())
	assert.Equal(t, []any{messages.OpponentDisconnected{RoomID: "room-1"}}, b.got)

	// b can queue again and meets the next arrival
	c := &fakePeer{id: "c"}
	r.Join(b, messages.FindMatch{Version: "1"})
	r.Join(c, messages.FindMatch{Version: "1"})
	assert.Equal(t, messages.MatchFound{RoomID: "room-2", PlayerID: 1, OpponentID: 2}, b.got[len(b.got)-1])
}

func TestLeaveWhileWaiting(t *testing.T) {
	r := NewRelay("1")
	a := &fakePeer{id: "a"}
	r.Join(a, messages.FindMatch{Version: "1"})

	r.Leave(a)
	assert.False(t, r.Waiting())
	assert.Equal(t, 0, r.PeerCount())
}

func TestSendFailureDoesNotBreakRoom(t *testing.T) {
	r := NewRelay("1")
	a, b := pair(t, r)
	b.fail = true

	r.Forward(a, messages.MeleeEvent{PlayerID: 1})
	assert.Equal(t, 1, r.Rooms())
}
