// Package metrics exposes Prometheus instrumentation for the LED
// controller: tick and transition counters, output failure counts and the
// currently displayed level.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// LED implements statusled.Recorder on top of Prometheus collectors.
type LED struct {
	ticks        *prometheus.CounterVec
	transitions  *prometheus.CounterVec
	outputErrors prometheus.Counter
	level        *prometheus.GaugeVec

	lastLevel string
}

// New creates the LED metric set and registers it with the given
// registerer. Pass prometheus.DefaultRegisterer to use the global registry.
func New(reg prometheus.Registerer) *LED {
	m := &LED{
		ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "led_render_ticks_total",
			Help: "Render ticks executed, by resolved status level",
		}, []string{"level"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "led_status_transitions_total",
			Help: "Status level transitions, by new level",
		}, []string{"level"}),
		outputErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "led_output_errors_total",
			Help: "Hardware channel write failures",
		}),
		level: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "led_status_level",
			Help: "Currently displayed status level (1 for active, 0 otherwise)",
		}, []string{"level"}),
	}
	reg.MustRegister(m.ticks, m.transitions, m.outputErrors, m.level)
	return m
}

// Tick counts one render tick at the resolved level.
func (m *LED) Tick(level string) {
	m.ticks.WithLabelValues(level).Inc()
}

// Transition records a level change. The gauge for the old level drops to
// 0 and the new one rises to 1, so dashboards can show the active level.
func (m *LED) Transition(from, to string) {
	m.transitions.WithLabelValues(to).Inc()
	if m.lastLevel != "" {
		m.level.WithLabelValues(m.lastLevel).Set(0)
	} else if from != "" {
		m.level.WithLabelValues(from).Set(0)
	}
	m.level.WithLabelValues(to).Set(1)
	m.lastLevel = to
}

// OutputError counts one hardware write failure.
func (m *LED) OutputError() {
	m.outputErrors.Inc()
}
