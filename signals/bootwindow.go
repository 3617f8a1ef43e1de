package signals

import "time"

// DefaultBootWindow is how long after startup the device is considered to
// be booting when the host has no boot signal of its own.
const DefaultBootWindow = 10 * time.Second

// BootWindow wraps a source so that BootActive reads true for the first d
// after start, regardless of what the inner source reports. Hosts without
// an explicit boot signal use this to get a boot indication from elapsed
// time alone. A non-positive d means DefaultBootWindow.
func BootWindow(src Source, start time.Time, d time.Duration) Source {
	if d <= 0 {
		d = DefaultBootWindow
	}
	return &bootWindow{src: src, start: start, d: d, now: time.Now}
}

type bootWindow struct {
	src   Source
	start time.Time
	d     time.Duration
	now   func() time.Time
}

func (b *bootWindow) Sample() Snapshot {
	snap := b.src.Sample()
	if b.now().Sub(b.start) < b.d {
		snap.BootActive = true
	}
	return snap
}
