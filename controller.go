// Package statusled arbitrates competing device status signals (errors,
// connectivity, OTA, boot) against user color commands and renders the
// winner to a single RGB LED. The host drives it one tick at a time; each
// tick samples signals, resolves a priority, composes a color and writes it
// to hardware.
package statusled

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Bluscream/rgb-status-led/events"
	"github.com/Bluscream/rgb-status-led/logging"
	"github.com/Bluscream/rgb-status-led/signals"
)

// Driver writes a rendered color to the LED hardware. Implementations live
// in the output package; tests supply fakes.
type Driver interface {
	Apply(Color) error
}

// Recorder receives observability callouts from the controller. The
// metrics package provides a Prometheus-backed implementation.
type Recorder interface {
	// Tick is called once per render tick with the resolved level name.
	Tick(level string)
	// Transition is called when the resolved level changes.
	Transition(from, to string)
	// OutputError is called when a hardware write fails.
	OutputError()
}

var (
	// ErrNilSource is returned by New when no signal source is supplied.
	ErrNilSource = errors.New("signal source is required")
	// ErrNilDriver is returned by New when no output driver is supplied.
	ErrNilDriver = errors.New("output driver is required")
)

// Options configures a new Controller.
type Options struct {
	// Source supplies the six host signals each tick (required).
	Source signals.Source

	// Driver writes the rendered color to hardware (required).
	Driver Driver

	// Bus receives status transition, user command and output error
	// events (optional).
	Bus *events.Bus

	// Metrics receives per-tick observability callouts (optional).
	Metrics Recorder

	// Logger for controller operations. If nil, uses slog.Default().
	Logger logging.Logger

	// Epoch anchors the blink phase. Zero means construction time.
	// Blinking is phase-locked to this instant, so timers with different
	// periods share nothing but elapsed time.
	Epoch time.Time
}

// Controller is the tick-driven arbitration and rendering engine. All
// methods except Tick and Run are safe to call from any goroutine; Tick
// must be driven from a single goroutine at a time.
type Controller struct {
	cfg      Config
	source   signals.Source
	driver   Driver
	bus      *events.Bus
	metrics  Recorder
	logger   logging.Logger
	epoch    time.Time
	override Override

	mu        sync.Mutex
	lastLevel Level
	started   bool
}

// New validates the configuration and wires up a controller. The Config is
// expected to already satisfy its invariants; Validate is run as a guard
// against programming errors upstream.
func New(cfg Config, opts Options) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Source == nil {
		return nil, ErrNilSource
	}
	if opts.Driver == nil {
		return nil, ErrNilDriver
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	epoch := opts.Epoch
	if epoch.IsZero() {
		epoch = time.Now()
	}

	c := &Controller{
		cfg:     cfg,
		source:  opts.Source,
		driver:  opts.Driver,
		bus:     opts.Bus,
		metrics: opts.Metrics,
		logger:  logger,
		epoch:   epoch,
	}

	logger.Info("Status LED controller configured",
		"priority_mode", string(cfg.PriorityMode),
		"brightness", cfg.Brightness,
		"error_blink_period", cfg.ErrorBlinkPeriod,
		"warning_blink_period", cfg.WarningBlinkPeriod,
		"ok_state_enabled", cfg.OKStateEnabled)

	return c, nil
}

// Tick runs one render pass: sample signals, arbitrate, render, write
// hardware. It never blocks and never fails; hardware write errors are
// reported as warnings and retried naturally on the next tick.
func (c *Controller) Tick(now time.Time) RenderState {
	sig := c.source.Sample()
	cmd, active := c.override.Current()
	out := resolve(c.cfg, sig, cmd, active)

	blinkOn := true
	switch out.Level {
	case LevelError:
		blinkOn = phase(now.Sub(c.epoch), c.cfg.ErrorBlinkPeriod)
	case LevelWarning:
		blinkOn = phase(now.Sub(c.epoch), c.cfg.WarningBlinkPeriod)
	}

	color := renderColor(out, blinkOn, c.cfg)

	if err := c.driver.Apply(color); err != nil {
		// Non-fatal: the loop may be indicating an error state already,
		// so it must keep running.
		c.logger.Warn("Failed to write LED output", "error", err)
		if c.metrics != nil {
			c.metrics.OutputError()
		}
		if c.bus != nil {
			c.bus.Publish(events.OutputErrorEvent{
				Error:     err.Error(),
				Timestamp: now.Format(time.RFC3339),
			})
		}
	}

	c.noteLevel(out.Level, now)
	if c.metrics != nil {
		c.metrics.Tick(out.Level.String())
	}

	return RenderState{Outcome: out, BlinkOn: blinkOn, Color: color}
}

// noteLevel records the resolved level and reports transitions.
func (c *Controller) noteLevel(level Level, now time.Time) {
	c.mu.Lock()
	prev := c.lastLevel
	first := !c.started
	c.started = true
	c.lastLevel = level
	c.mu.Unlock()

	if !first && prev == level {
		return
	}

	// The first tick establishes a level rather than leaving one.
	from := prev.String()
	if first {
		from = ""
	}

	c.logger.Debug("Status level changed",
		"from", from,
		"to", level.String())
	if c.metrics != nil {
		c.metrics.Transition(from, level.String())
	}
	if c.bus != nil {
		c.bus.Publish(events.StatusChangedEvent{
			From:      from,
			To:        level.String(),
			Timestamp: now.Format(time.RFC3339),
		})
	}
}

// Level returns the level resolved by the most recent tick, or LevelOff
// before the first tick has run.
func (c *Controller) Level() Level {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		return LevelOff
	}
	return c.lastLevel
}

// SetUserColor records a user override of the LED. The newest command
// always wins; whether it shows immediately depends on the priority mode
// and current status. Safe from any goroutine.
func (c *Controller) SetUserColor(color Color, on bool) {
	cmd := c.override.Set(color.Clamped(), on)
	c.logger.Debug("User color set",
		"red", cmd.Color.R, "green", cmd.Color.G, "blue", cmd.Color.B,
		"on", on, "seq", cmd.Seq)
	if c.bus != nil {
		c.bus.Publish(events.UserCommandEvent{
			Action:    "set",
			Red:       cmd.Color.R,
			Green:     cmd.Color.G,
			Blue:      cmd.Color.B,
			On:        on,
			Seq:       cmd.Seq,
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}
}

// ClearUserColor removes the user override, returning the LED to pure
// status indication. Safe from any goroutine.
func (c *Controller) ClearUserColor() {
	c.override.Clear()
	c.logger.Debug("User color cleared")
	if c.bus != nil {
		c.bus.Publish(events.UserCommandEvent{
			Action:    "clear",
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}
}

// Run ticks the controller at the given interval until the context is
// canceled. It is a convenience for hosts without their own scheduler; the
// core stays host-clocked and Run only calls Tick. The interval should be
// well under the blink periods (10-50ms) for smooth blinking.
func (c *Controller) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.logger.Info("Status LED loop started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Status LED loop stopped")
			return
		case now := <-ticker.C:
			c.Tick(now)
		}
	}
}
