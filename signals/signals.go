// Package signals defines the narrow capability interface through which the
// host application exposes device state to the LED controller: six boolean
// queries, sampled fresh every tick.
package signals

// Snapshot holds one tick's worth of host signals. It is recomputed every
// sample and never diffed against the previous one.
type Snapshot struct {
	HasError      bool
	HasWarning    bool
	WifiConnected bool
	APIConnected  bool
	OTAActive     bool
	BootActive    bool
}

// Source supplies a fresh Snapshot on every call. Sampling must be cheap
// and non-blocking; it runs inside the render tick.
type Source interface {
	Sample() Snapshot
}

// Funcs adapts six host-supplied callbacks into a Source. Nil callbacks
// read as false, so a host only wires the signals it actually has.
type Funcs struct {
	HasError      func() bool
	HasWarning    func() bool
	WifiConnected func() bool
	APIConnected  func() bool
	OTAActive     func() bool
	BootActive    func() bool
}

// Sample polls every non-nil callback once.
func (f Funcs) Sample() Snapshot {
	return Snapshot{
		HasError:      poll(f.HasError),
		HasWarning:    poll(f.HasWarning),
		WifiConnected: poll(f.WifiConnected),
		APIConnected:  poll(f.APIConnected),
		OTAActive:     poll(f.OTAActive),
		BootActive:    poll(f.BootActive),
	}
}

func poll(f func() bool) bool {
	return f != nil && f()
}

// Static is a fixed Snapshot source, useful for tests and bring-up.
type Static Snapshot

// Sample returns the fixed snapshot.
func (s Static) Sample() Snapshot {
	return Snapshot(s)
}
