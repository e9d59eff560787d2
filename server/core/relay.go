package core

import (
	"fmt"
	"sync"

	"github.com/automoto/bloodduel/logger"
	"github.com/automoto/bloodduel/shared/messages"
	"github.com/sirupsen/logrus"
)

// Peer is a connected client. *router.NetworkClient implements it.
type Peer interface {
	Id() string
	SendMessage(msg any) error
}

type room struct {
	id    string
	peers [2]Peer // index 0 plays actor 1
}

func (r *room) opponent(p Peer) (Peer, bool) {
	switch p.Id() {
	case r.peers[0].Id():
		return r.peers[1], true
	case r.peers[1].Id():
		return r.peers[0], true
	}
	return nil, false
}

// Relay pairs peers into two-player rooms and forwards sync messages between
// them. It never simulates anything; each peer is authoritative for its own
// actor.
type Relay struct {
	mu sync.Mutex

	version  string
	waiting  Peer
	rooms    map[string]*room // by peer id
	nextRoom int

	log *logrus.Entry
}

// NewRelay returns a relay. A non-empty version must match the one peers
// announce in FindMatch.
func NewRelay(version string) *Relay {
	return &Relay{
		version: version,
		rooms:   make(map[string]*room),
		log:     logger.For("relay"),
	}
}

// Join queues p for a match, or pairs it with the waiting peer. The first
// arrival plays actor 1.
func (r *Relay) Join(p Peer, req messages.FindMatch) {
	if r.version != "" && req.Version != r.version {
		r.log.WithFields(logrus.Fields{"peer": p.Id(), "version": req.Version}).Warn("rejecting peer with wrong version")
		r.send(p, messages.MatchRejected{Reason: fmt.Sprintf("version mismatch: server %s, client %s", r.version, req.Version)})
		return
	}

	r.mu.Lock()
	if _, playing := r.rooms[p.Id()]; playing || (r.waiting != nil && r.waiting.Id() == p.Id()) {
		r.mu.Unlock()
		return
	}
	if r.waiting == nil {
		r.waiting = p
		r.mu.Unlock()
		r.log.WithFields(logrus.Fields{"peer": p.Id(), "name": req.PlayerName}).Info("peer waiting for opponent")
		return
	}

	r.nextRoom++
	rm := &room{id: fmt.Sprintf("room-%d", r.nextRoom), peers: [2]Peer{r.waiting, p}}
	r.waiting = nil
	r.rooms[rm.peers[0].Id()] = rm
	r.rooms[rm.peers[1].Id()] = rm
	r.mu.Unlock()

	r.log.WithFields(logrus.Fields{"room": rm.id, "p1": rm.peers[0].Id(), "p2": rm.peers[1].Id()}).Info("match found")
	r.send(rm.peers[0], messages.MatchFound{RoomID: rm.id, PlayerID: 1, OpponentID: 2})
	r.send(rm.peers[1], messages.MatchFound{RoomID: rm.id, PlayerID: 2, OpponentID: 1})
}

// Leave removes p. Its opponent, if any, is told and the room is freed.
func (r *Relay) Leave(p Peer) {
	r.mu.Lock()
	if r.waiting != nil && r.waiting.Id() == p.Id() {
		r.waiting = nil
		r.mu.Unlock()
		return
	}
	rm, ok := r.rooms[p.Id()]
	if !ok {
		r.mu.Unlock()
		return
	}
	delete(r.rooms, rm.peers[0].Id())
	delete(r.rooms, rm.peers[1].Id())
	r.mu.Unlock()

	r.log.WithFields(logrus.Fields{"room": rm.id, "peer": p.Id()}).Info("room closed")
	if other, ok := rm.opponent(p); ok {
		r.send(other, messages.OpponentDisconnected{RoomID: rm.id})
	}
}

// Forward relays a sync message from p. RoundEnd goes to both peers so they
// close the round together; everything else goes to the opponent only.
func (r *Relay) Forward(p Peer, msg any) {
	r.mu.Lock()
	rm, ok := r.rooms[p.Id()]
	r.mu.Unlock()
	if !ok {
		return
	}

	if _, isEnd := msg.(messages.RoundEnd); isEnd {
		r.send(rm.peers[0], msg)
		r.send(rm.peers[1], msg)
		return
	}
	if other, ok := rm.opponent(p); ok {
		r.send(other, msg)
	}
}

// Rooms returns the number of active rooms.
func (r *Relay) Rooms() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms) / 2
}

// Waiting reports whether a peer is waiting for an opponent.
func (r *Relay) Waiting() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.waiting != nil
}

// PeerCount returns the number of peers waiting or playing.
func (r *Relay) PeerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.rooms)
	if r.waiting != nil {
		n++
	}
	return n
}

func (r *Relay) send(p Peer, msg any) {
	if err := p.SendMessage(msg); err != nil {
		r.log.WithError(err).WithFields(logrus.Fields{"peer": p.Id(), "type": fmt.Sprintf("%T", msg)}).Warn("send failed")
	}
}
