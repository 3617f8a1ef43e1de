package statusled

import (
	"fmt"
	"time"
)

// Config holds the validated controller parameters. It is immutable once
// handed to New; to change settings, build a new controller.
type Config struct {
	// Colors per status level.
	ErrorColor   Color
	WarningColor Color
	OKColor      Color
	BootColor    Color
	WifiColor    Color
	APIColor     Color
	OTAColor     Color

	// Blink periods for the two blinking levels. Must be positive.
	ErrorBlinkPeriod   time.Duration
	WarningBlinkPeriod time.Duration

	// Brightness is a global multiplier in [0, 1] applied to every
	// rendered color.
	Brightness float64

	// PriorityMode decides whether status or user commands win.
	PriorityMode PriorityMode

	// OKStateEnabled controls whether the OK level lights the LED or
	// leaves it dark to save power.
	OKStateEnabled bool
}

// DefaultConfig returns the stock configuration: red error at 250ms,
// orange warning at 1500ms, half brightness, status priority, OK shown.
func DefaultConfig() Config {
	return Config{
		ErrorColor:         Color{R: 1},
		WarningColor:       Color{R: 1, G: 0.5},
		OKColor:            Color{G: 1, B: 0.1},
		BootColor:          Color{R: 1},
		WifiColor:          Color{R: 0.7, G: 0.7, B: 0.7},
		APIColor:           Color{G: 1, B: 0.1},
		OTAColor:           Color{B: 1},
		ErrorBlinkPeriod:   250 * time.Millisecond,
		WarningBlinkPeriod: 1500 * time.Millisecond,
		Brightness:         0.5,
		PriorityMode:       PriorityStatus,
		OKStateEnabled:     true,
	}
}

// Validate checks the configuration invariants: all color channels in
// [0, 1], positive blink periods, brightness in [0, 1], known priority mode.
func (c Config) Validate() error {
	colors := []struct {
		name  string
		color Color
	}{
		{"error_color", c.ErrorColor},
		{"warning_color", c.WarningColor},
		{"ok_color", c.OKColor},
		{"boot_color", c.BootColor},
		{"wifi_color", c.WifiColor},
		{"api_color", c.APIColor},
		{"ota_color", c.OTAColor},
	}
	for _, cc := range colors {
		if !cc.color.inRange() {
			return fmt.Errorf("%s: channels must be in [0, 1], got %+v", cc.name, cc.color)
		}
	}
	if c.ErrorBlinkPeriod <= 0 {
		return fmt.Errorf("error_blink_period must be positive, got %s", c.ErrorBlinkPeriod)
	}
	if c.WarningBlinkPeriod <= 0 {
		return fmt.Errorf("warning_blink_period must be positive, got %s", c.WarningBlinkPeriod)
	}
	if c.Brightness < 0 || c.Brightness > 1 {
		return fmt.Errorf("brightness must be in [0, 1], got %g", c.Brightness)
	}
	if c.PriorityMode != PriorityStatus && c.PriorityMode != PriorityUser {
		return fmt.Errorf("priority_mode must be %q or %q, got %q", PriorityStatus, PriorityUser, c.PriorityMode)
	}
	return nil
}

// colorFor returns the configured color for a status level. Outcome-only
// levels (off, user) have no configured color and return black.
func (c Config) colorFor(l Level) Color {
	switch l {
	case LevelError:
		return c.ErrorColor
	case LevelWarning:
		return c.WarningColor
	case LevelOTA:
		return c.OTAColor
	case LevelBoot:
		return c.BootColor
	case LevelWifiDisconnected:
		return c.WifiColor
	case LevelAPIDisconnected:
		return c.APIColor
	case LevelOK:
		return c.OKColor
	default:
		return Black
	}
}
