package messages

// FindMatch is sent by a client after connecting to ask the relay for an
// opponent.
type FindMatch struct {
	Version    string
	PlayerName string
}

// MatchFound is sent by the relay to both peers once they are paired.
type MatchFound struct {
	RoomID     string
	PlayerID   int
	OpponentID int
}

// MatchRejected is sent by the relay when a client cannot be paired.
type MatchRejected struct {
	Reason string
}

// OpponentDisconnected tells the remaining peer its room is gone.
type OpponentDisconnected struct {
	RoomID string
}
