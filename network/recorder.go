package network

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/automoto/bloodduel/shared/protocol"
	"github.com/vmihailenco/msgpack/v5"
)

// Direction of a recorded message
const (
	Inbound  = "in"
	Outbound = "out"
)

// Frame is one recorded message as stored on disk.
type Frame struct {
	Tick      uint64             `msgpack:"tick"`
	Direction string             `msgpack:"dir"`
	Kind      string             `msgpack:"kind"`
	Payload   msgpack.RawMessage `msgpack:"payload"`
}

// Entry is a decoded frame.
type Entry struct {
	Tick      uint64
	Direction string
	Message   any
}

// Recorder writes every sync message that crosses the bridge as a stream of
// msgpack frames, for replaying and debugging a session.
type Recorder struct {
	mu  sync.Mutex
	enc *msgpack.Encoder
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: msgpack.NewEncoder(w)}
}

// Record appends msg. Messages without a protocol kind are rejected.
func (r *Recorder) Record(tick uint64, direction string, msg any) error {
	kind, ok := protocol.KindOf(msg)
	if !ok {
		return fmt.Errorf("record %T: not a protocol message", msg)
	}
	payload, err := msgpack.Marshal(msg)
	if err != nil {
		return fmt.Errorf("record %s: %w", kind, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enc.Encode(&Frame{Tick: tick, Direction: direction, Kind: kind, Payload: payload}); err != nil {
		return fmt.Errorf("record %s: %w", kind, err)
	}
	return nil
}

// ReadRecording decodes every frame in r.
func ReadRecording(r io.Reader) ([]Entry, error) {
	dec := msgpack.NewDecoder(r)

	var out []Entry
	for {
		var f Frame
		if err := dec.Decode(&f); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, fmt.Errorf("read frame %d: %w", len(out), err)
		}
		msg, err := protocol.Decode(f.Kind, func(v any) error {
			return msgpack.Unmarshal(f.Payload, v)
		})
		if err != nil {
			return out, fmt.Errorf("read frame %d: %w", len(out), err)
		}
		out = append(out, Entry{Tick: f.Tick, Direction: f.Direction, Message: msg})
	}
}
