// Package metrics counts page activity with Prometheus and optionally serves /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Advance sources.
const (
	SourceAuto   = "auto"
	SourceManual = "manual"
	SourceSwipe  = "swipe"
)

// Metrics holds the page counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	carouselAdvances *prometheus.CounterVec
	modeSwitches     *prometheus.CounterVec
	taglineRequests  *prometheus.CounterVec
}

// New creates the counters and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		carouselAdvances: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bemali_carousel_advances_total",
				Help: "Carousel transitions started, by source.",
			},
			[]string{"source"},
		),
		modeSwitches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bemali_mode_switches_total",
				Help: "Completed mode switches, by target mode.",
			},
			[]string{"target"},
		),
		taglineRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bemali_tagline_requests_total",
				Help: "Tagline generation attempts, by mode and outcome.",
			},
			[]string{"mode", "outcome"},
		),
	}

	for _, c := range []prometheus.Collector{m.carouselAdvances, m.modeSwitches, m.taglineRequests} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// CarouselAdvance counts a transition started by source.
func (m *Metrics) CarouselAdvance(source string) {
	if m == nil {
		return
	}
	m.carouselAdvances.WithLabelValues(source).Inc()
}

// ModeSwitch counts a completed switch to target.
func (m *Metrics) ModeSwitch(target string) {
	if m == nil {
		return
	}
	m.modeSwitches.WithLabelValues(target).Inc()
}

// Tagline counts a tagline attempt.
func (m *Metrics) Tagline(mode, outcome string) {
	if m == nil {
		return
	}
	m.taglineRequests.WithLabelValues(mode, outcome).Inc()
}
