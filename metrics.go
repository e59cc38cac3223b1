// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package cefui

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "cefui"

type metrics struct {
	browsersLive    prometheus.Gauge
	browsersClosing prometheus.Gauge
	browsersCreated prometheus.Counter
	paints          prometheus.Counter
	paintResizes    prometheus.Counter
	pumps           prometheus.Counter
	inputDropped    prometheus.Counter
}

// newMetrics creates the runtime metrics and registers them on reg when it
// is not nil.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		browsersLive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "browsers_live",
			Help:      "Browsers registered and addressable by handle.",
		}),
		browsersClosing: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "browsers_closing",
			Help:      "Browsers removed but not yet torn down by the engine.",
		}),
		browsersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "browsers_created_total",
			Help:      "Browsers created since start-up.",
		}),
		paints: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "paints_total",
			Help:      "Frames uploaded to browser textures.",
		}),
		paintResizes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "paint_resizes_total",
			Help:      "Textures resized because a frame did not match their size.",
		}),
		pumps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "message_loop_pumps_total",
			Help:      "Engine message loop iterations.",
		}),
		inputDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "input_dropped_total",
			Help:      "Input events dropped because their handle no longer resolves.",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{
		m.browsersLive,
		m.browsersClosing,
		m.browsersCreated,
		m.paints,
		m.paintResizes,
		m.pumps,
		m.inputDropped,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) observePaint(resized bool) {
	m.paints.Inc()
	if resized {
		m.paintResizes.Inc()
	}
}
