package core

import (
	"github.com/automoto/bloodduel/logger"
	"github.com/automoto/bloodduel/shared/messages"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/sirupsen/logrus"
)

// Server exposes a Relay over necs websockets.
type Server struct {
	relay     *Relay
	transport *transports.WsServerTransport
	log       *logrus.Entry
}

// NewServer creates a relay server. version is the protocol version clients
// must announce; empty accepts any.
func NewServer(version string) *Server {
	s := &Server{
		relay: NewRelay(version),
		log:   logger.For("relay"),
	}
	s.setupRouterCallbacks()
	return s
}

// Start serves on the given port. It blocks until the transport stops.
func (s *Server) Start(port uint) error {
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop drops every registered router callback.
func (s *Server) Stop() {
	router.ResetRouter()
}

// Relay returns the pairing state.
func (s *Server) Relay() *Relay {
	return s.relay
}

func forward[T any](s *Server) {
	router.On(func(client *router.NetworkClient, msg T) {
		s.relay.Forward(client, msg)
	})
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.log.WithField("peer", client.Id()).Info("client connected")
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		entry := s.log.WithField("peer", client.Id())
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Info("client disconnected")
		s.relay.Leave(client)
	})

	router.On(func(client *router.NetworkClient, msg messages.FindMatch) {
		s.relay.Join(client, msg)
	})

	forward[messages.PlayerUpdate](s)
	forward[messages.MeleeEvent](s)
	forward[messages.ProjectileSpawned](s)
	forward[messages.DamageEvent](s)
	forward[messages.RoundEnd](s)

	router.OnError(func(client *router.NetworkClient, err error) {
		s.log.WithError(err).WithField("peer", client.Id()).Warn("client error")
	})
}
