// Package output adapts rendered colors to LED hardware. A Channel drives
// one hardware output at a level between 0 and 1; RGB fans a color out to
// three of them. Sysfs channels back onto the Linux LED class; noop
// channels stand in when the board has no addressable LED.
package output

import (
	"errors"
	"fmt"

	statusled "github.com/Bluscream/rgb-status-led"
)

// Channel drives one hardware output. Level is in [0, 1]; the
// implementation owns the mapping to whatever range the hardware wants.
type Channel interface {
	SetLevel(level float64) error
}

// RGB fans a color out to three independent channels. It implements
// statusled.Driver.
type RGB struct {
	Red   Channel
	Green Channel
	Blue  Channel
}

// Apply writes the color to all three channels. Each channel is attempted
// even when an earlier one fails, so a single broken channel does not take
// the other two down with it; failures are joined into one error.
func (r *RGB) Apply(c statusled.Color) error {
	return errors.Join(
		wrapChannel("red", r.Red.SetLevel(c.R)),
		wrapChannel("green", r.Green.SetLevel(c.G)),
		wrapChannel("blue", r.Blue.SetLevel(c.B)),
	)
}

func wrapChannel(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s channel: %w", name, err)
}
