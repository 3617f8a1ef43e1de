package statusled

// Color is an immutable RGB triple with channels in [0, 1].
type Color struct {
	R float64 `toml:"red" json:"red"`
	G float64 `toml:"green" json:"green"`
	B float64 `toml:"blue" json:"blue"`
}

// Black is the all-off color.
var Black = Color{}

// Scaled returns the color with every channel multiplied by brightness.
// Plain multiplicative dimming, no gamma correction.
func (c Color) Scaled(brightness float64) Color {
	return Color{
		R: c.R * brightness,
		G: c.G * brightness,
		B: c.B * brightness,
	}
}

// Clamped returns the color with every channel clamped to [0, 1].
func (c Color) Clamped() Color {
	return Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
	}
}

// inRange reports whether every channel is within [0, 1].
func (c Color) inRange() bool {
	return c.R >= 0 && c.R <= 1 && c.G >= 0 && c.G <= 1 && c.B >= 0 && c.B <= 1
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
