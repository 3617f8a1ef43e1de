package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestLED_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Tick("ok")
	m.Tick("ok")
	m.Tick("error")
	m.OutputError()

	if got := testutil.ToFloat64(m.ticks.WithLabelValues("ok")); got != 2 {
		t.Errorf("ok ticks = %g, want 2", got)
	}
	if got := testutil.ToFloat64(m.ticks.WithLabelValues("error")); got != 1 {
		t.Errorf("error ticks = %g, want 1", got)
	}
	if got := testutil.ToFloat64(m.outputErrors); got != 1 {
		t.Errorf("output errors = %g, want 1", got)
	}
}

func TestLED_LevelGaugeTracksTransitions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Transition("", "ok")
	if got := testutil.ToFloat64(m.level.WithLabelValues("ok")); got != 1 {
		t.Errorf("ok gauge = %g, want 1", got)
	}

	m.Transition("ok", "error")
	if got := testutil.ToFloat64(m.level.WithLabelValues("ok")); got != 0 {
		t.Errorf("ok gauge after transition = %g, want 0", got)
	}
	if got := testutil.ToFloat64(m.level.WithLabelValues("error")); got != 1 {
		t.Errorf("error gauge = %g, want 1", got)
	}

	if got := testutil.ToFloat64(m.transitions.WithLabelValues("error")); got != 1 {
		t.Errorf("transitions to error = %g, want 1", got)
	}
}

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.Tick("ok")
	m.Transition("", "ok")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() failed: %v", err)
	}

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{"led_render_ticks_total", "led_status_transitions_total", "led_status_level"} {
		if !names[want] {
			t.Errorf("metric %q not registered", want)
		}
	}
}
