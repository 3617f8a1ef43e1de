package output

import (
	"errors"
	"strings"
	"testing"

	statusled "github.com/Bluscream/rgb-status-led"
)

// recordChannel records levels and can be told to fail.
type recordChannel struct {
	levels []float64
	err    error
}

func (r *recordChannel) SetLevel(level float64) error {
	r.levels = append(r.levels, level)
	return r.err
}

func TestRGB_FansOut(t *testing.T) {
	red := &recordChannel{}
	green := &recordChannel{}
	blue := &recordChannel{}
	rgb := &RGB{Red: red, Green: green, Blue: blue}

	if err := rgb.Apply(statusled.Color{R: 0.5, G: 0.25, B: 1}); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	if len(red.levels) != 1 || red.levels[0] != 0.5 {
		t.Errorf("red levels = %v, want [0.5]", red.levels)
	}
	if len(green.levels) != 1 || green.levels[0] != 0.25 {
		t.Errorf("green levels = %v, want [0.25]", green.levels)
	}
	if len(blue.levels) != 1 || blue.levels[0] != 1 {
		t.Errorf("blue levels = %v, want [1]", blue.levels)
	}
}

func TestRGB_FailedChannelDoesNotBlockOthers(t *testing.T) {
	red := &recordChannel{err: errors.New("bad wire")}
	green := &recordChannel{}
	blue := &recordChannel{err: errors.New("worse wire")}
	rgb := &RGB{Red: red, Green: green, Blue: blue}

	err := rgb.Apply(statusled.Color{R: 1, G: 1, B: 1})
	if err == nil {
		t.Fatal("Apply() = nil, want joined error")
	}

	// All three channels must have been attempted.
	if len(red.levels) != 1 || len(green.levels) != 1 || len(blue.levels) != 1 {
		t.Error("not every channel was attempted")
	}

	msg := err.Error()
	if !strings.Contains(msg, "red channel") || !strings.Contains(msg, "blue channel") {
		t.Errorf("error %q does not name the failed channels", msg)
	}
	if strings.Contains(msg, "green channel") {
		t.Errorf("error %q names the healthy channel", msg)
	}
}

func TestNoopChannel(t *testing.T) {
	ch := NewNoop(nil, "red")
	if err := ch.SetLevel(0.5); err != nil {
		t.Errorf("SetLevel() = %v, want nil", err)
	}
}
