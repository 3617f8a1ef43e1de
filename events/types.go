package events

// Event type constants for kelindar/event.
const (
	TypeStatusChanged uint32 = iota + 1
	TypeUserCommand
	TypeOutputError
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// StatusChangedEvent is published when arbitration resolves to a different
// level than on the previous tick.
type StatusChangedEvent struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Timestamp string `json:"timestamp"`
}

// Type returns the event type identifier for StatusChangedEvent.
func (e StatusChangedEvent) Type() uint32 { return TypeStatusChanged }

// UserCommandEvent is published when the user control surface sets or
// clears an override. Action is "set" or "clear"; the color, on flag and
// sequence number are meaningful only for "set".
type UserCommandEvent struct {
	Action    string  `json:"action"`
	Red       float64 `json:"red"`
	Green     float64 `json:"green"`
	Blue      float64 `json:"blue"`
	On        bool    `json:"on"`
	Seq       uint64  `json:"seq"`
	Timestamp string  `json:"timestamp"`
}

// Type returns the event type identifier for UserCommandEvent.
func (e UserCommandEvent) Type() uint32 { return TypeUserCommand }

// OutputErrorEvent is published when a hardware channel write fails.
// Writes are retried naturally on the next tick, so this is informational.
type OutputErrorEvent struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// Type returns the event type identifier for OutputErrorEvent.
func (e OutputErrorEvent) Type() uint32 { return TypeOutputError }
