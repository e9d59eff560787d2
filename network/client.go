package network

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/automoto/bloodduel/logger"
	"github.com/automoto/bloodduel/shared/messages"
	"github.com/automoto/bloodduel/shared/protocol"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/sirupsen/logrus"
)

// ErrNotConnected is returned by Send while there is no open connection.
var ErrNotConnected = errors.New("not connected")

// inboxSize bounds the messages buffered between two drains.
const inboxSize = 256

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateMatched
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateMatched:
		return "matched"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Client manages the websocket connection to a relay.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	roomID    string
	playerID  int
	conn      *websocket.Conn

	// inbox carries every message for the game loop; the loop drains it at
	// the start of a tick.
	inbox chan any

	log *logrus.Entry
}

func NewClient() *Client {
	return &Client{
		state: StateDisconnected,
		inbox: make(chan any, inboxSize),
		log:   logger.For("client"),
	}
}

// Connect dials the relay in a background goroutine and asks for a match once
// the connection is up.
func (c *Client) Connect(address, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		c.log.WithField("addr", address).Info("connected to relay")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		if err := c.Send(messages.FindMatch{Version: protocol.Version, PlayerName: playerName}); err != nil {
			c.setError(fmt.Errorf("send find match: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.MatchFound) { c.onMatchFound(msg) })
	router.On(func(_ *router.NetworkClient, msg messages.MatchRejected) { c.onMatchRejected(msg) })
	router.On(func(_ *router.NetworkClient, msg messages.OpponentDisconnected) { c.onOpponentDisconnected(msg) })

	router.On(func(_ *router.NetworkClient, msg messages.PlayerUpdate) { c.push(msg) })
	router.On(func(_ *router.NetworkClient, msg messages.MeleeEvent) { c.push(msg) })
	router.On(func(_ *router.NetworkClient, msg messages.ProjectileSpawned) { c.push(msg) })
	router.On(func(_ *router.NetworkClient, msg messages.DamageEvent) { c.push(msg) })
	router.On(func(_ *router.NetworkClient, msg messages.RoundEnd) { c.push(msg) })

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		c.log.WithError(err).Info("disconnected from relay")
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		c.log.WithError(err).Warn("router error")
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) onMatchFound(msg messages.MatchFound) {
	c.log.WithFields(logrus.Fields{"room": msg.RoomID, "id": msg.PlayerID}).Info("match found")
	c.mu.Lock()
	c.roomID = msg.RoomID
	c.playerID = msg.PlayerID
	c.state = StateMatched
	c.mu.Unlock()
	c.push(msg)
}

func (c *Client) onMatchRejected(msg messages.MatchRejected) {
	c.log.WithField("reason", msg.Reason).Warn("match rejected")
	c.setError(fmt.Errorf("match rejected: %s", msg.Reason))
}

func (c *Client) onOpponentDisconnected(msg messages.OpponentDisconnected) {
	c.log.WithField("room", msg.RoomID).Info("opponent left")
	c.mu.Lock()
	if c.state == StateMatched {
		c.state = StateConnected
	}
	c.roomID = ""
	c.playerID = 0
	c.mu.Unlock()
	c.push(msg)
}

// push hands msg to the game loop. A full inbox drops the message rather than
// blocking the router goroutine.
func (c *Client) push(msg any) {
	select {
	case c.inbox <- msg:
	default:
		c.log.WithField("type", fmt.Sprintf("%T", msg)).Warn("inbox full, dropping message")
	}
}

// Drain returns all pending inbound messages in arrival order, non-blocking.
func (c *Client) Drain() []any {
	var out []any
	for {
		select {
		case msg := <-c.inbox:
			out = append(out, msg)
		default:
			return out
		}
	}
}

// Send serializes msg and writes it to the relay.
func (c *Client) Send(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return ErrNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.roomID = ""
	c.playerID = 0
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// PlayerID is the actor id the relay assigned, or 0 before a match.
func (c *Client) PlayerID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.playerID
}

func (c *Client) RoomID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.roomID
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}
