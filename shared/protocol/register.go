// Package protocol names the wire messages so they can be stored and decoded
// outside the necs router, e.g. in session recordings.
package protocol

import (
	"fmt"

	"github.com/automoto/bloodduel/shared/messages"
)

// Version is the protocol version a client announces in FindMatch.
const Version = "1"

// Message kinds
const (
	KindPlayerUpdate         = "playerUpdate"
	KindMeleeEvent           = "meleeEvent"
	KindProjectileSpawned    = "projectileSpawned"
	KindDamageEvent          = "damageEvent"
	KindRoundEnd             = "roundEnd"
	KindFindMatch            = "findMatch"
	KindMatchFound           = "matchFound"
	KindMatchRejected        = "matchRejected"
	KindOpponentDisconnected = "opponentDisconnected"
)

// KindOf returns the kind name of a message value.
func KindOf(msg any) (string, bool) {
	switch msg.(type) {
	case messages.PlayerUpdate:
		return KindPlayerUpdate, true
	case messages.MeleeEvent:
		return KindMeleeEvent, true
	case messages.ProjectileSpawned:
		return KindProjectileSpawned, true
	case messages.DamageEvent:
		return KindDamageEvent, true
	case messages.RoundEnd:
		return KindRoundEnd, true
	case messages.FindMatch:
		return KindFindMatch, true
	case messages.MatchFound:
		return KindMatchFound, true
	case messages.MatchRejected:
		return KindMatchRejected, true
	case messages.OpponentDisconnected:
		return KindOpponentDisconnected, true
	}
	return "", false
}

type decodeFunc func(unmarshal func(v any) error) (any, error)

func decodeAs[T any](unmarshal func(v any) error) (any, error) {
	var msg T
	if err := unmarshal(&msg); err != nil {
		return nil, err
	}
	return msg, nil
}

var decoders = map[string]decodeFunc{
	KindPlayerUpdate:         decodeAs[messages.PlayerUpdate],
	KindMeleeEvent:           decodeAs[messages.MeleeEvent],
	KindProjectileSpawned:    decodeAs[messages.ProjectileSpawned],
	KindDamageEvent:          decodeAs[messages.DamageEvent],
	KindRoundEnd:             decodeAs[messages.RoundEnd],
	KindFindMatch:            decodeAs[messages.FindMatch],
	KindMatchFound:           decodeAs[messages.MatchFound],
	KindMatchRejected:        decodeAs[messages.MatchRejected],
	KindOpponentDisconnected: decodeAs[messages.OpponentDisconnected],
}

// Decode builds the message value for kind. unmarshal fills the pointer it is
// given, e.g. a closure over msgpack.Unmarshal and the raw payload.
func Decode(kind string, unmarshal func(v any) error) (any, error) {
	dec, ok := decoders[kind]
	if !ok {
		return nil, fmt.Errorf("unknown message kind %q", kind)
	}
	msg, err := dec(unmarshal)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return msg, nil
}
