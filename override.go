package statusled

import "sync"

// UserCommand is a user-issued override of the LED: a target color and an
// on/off flag. Seq increases with every Set so observers can tell commands
// apart; the newest command always wins.
type UserCommand struct {
	Color Color
	On    bool
	Seq   uint64
}

// Override tracks the last user command. It is the one piece of state
// shared between the render tick and asynchronous control-surface callers,
// so access is mutex-guarded: a tick never observes a half-written command.
type Override struct {
	mu     sync.Mutex
	cmd    UserCommand
	active bool
}

// Set records a new user command, replacing any prior one. No queuing:
// last write wins.
func (o *Override) Set(color Color, on bool) UserCommand {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cmd = UserCommand{Color: color, On: on, Seq: o.cmd.Seq + 1}
	o.active = true
	return o.cmd
}

// Clear removes the active command, returning arbitration to status-only
// behavior. Commands never expire on their own; this is the only way out.
func (o *Override) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.active = false
}

// Current returns a snapshot of the active command, if any.
func (o *Override) Current() (UserCommand, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cmd, o.active
}
