package orrery

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the propagation counters exported by the orrery.
type Metrics struct {
	Ticks        prometheus.Counter
	SimTime      prometheus.Gauge
	TimeScale    prometheus.Gauge
	NonConverged *prometheus.CounterVec
	Halted       *prometheus.CounterVec
	TrailPoints  *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg unless reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "orrery",
			Name:      "ticks_total",
			Help:      "Number of simulation ticks.",
		}),
		SimTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "orrery",
			Name:      "sim_time",
			Help:      "Current simulated time.",
		}),
		TimeScale: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "orrery",
			Name:      "time_scale",
			Help:      "Current time scale factor.",
		}),
		NonConverged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orrery",
			Name:      "kepler_nonconverged_total",
			Help:      "Kepler solves that hit the iteration cap.",
		}, []string{"body"}),
		Halted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "orrery",
			Name:      "bodies_halted_total",
			Help:      "Bodies stopped because of invalid orbital elements.",
		}, []string{"body"}),
		TrailPoints: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "orrery",
			Name:      "trail_points",
			Help:      "Points currently kept in each trajectory.",
		}, []string{"body"}),
	}

	if reg != nil {
		reg.MustRegister(m.Ticks, m.SimTime, m.TimeScale, m.NonConverged, m.Halted, m.TrailPoints)
	}

	return m
}
