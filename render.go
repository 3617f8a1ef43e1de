package statusled

// RenderState is the derived result of one tick: the arbitration outcome,
// the blink phase that was applied (meaningful only for blinking levels)
// and the final color written to hardware. Recomputed every tick, never
// persisted.
type RenderState struct {
	Outcome Outcome
	BlinkOn bool
	Color   Color
}

// renderColor converts an outcome and blink phase into the final output
// color. Error and warning alternate between their configured color and
// black; every other level is solid. Brightness scaling is applied to
// whatever color was chosen; a brightness of 0 darkens the LED without
// being special-cased.
func renderColor(out Outcome, blinkOn bool, cfg Config) Color {
	switch {
	case out.Level == LevelOff:
		return Black
	case out.Level == LevelUser:
		if !out.Command.On {
			return Black
		}
		return out.Command.Color.Scaled(cfg.Brightness)
	case out.Level.Blinks() && !blinkOn:
		return Black
	default:
		return cfg.colorFor(out.Level).Scaled(cfg.Brightness)
	}
}
