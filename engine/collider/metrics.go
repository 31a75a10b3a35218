package collider

import "github.com/prometheus/client_golang/prometheus"

const namespace = "collider_scheduler"

// Metrics mirrors scheduler activity into Prometheus collectors.
type Metrics struct {
	applied     prometheus.Counter
	superseded  prometheus.Counter
	dropped     prometheus.Counter
	stale       prometheus.Counter
	queueLength prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg when it is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		applied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "applied_total",
			Help:      "The total number of collider state changes applied.",
		}),
		superseded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "superseded_total",
			Help:      "The total number of pending requests replaced by a newer request.",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dropped_total",
			Help:      "The total number of redundant requests ignored.",
		}),
		stale: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_total",
			Help:      "The total number of superseded queue entries discarded while processing.",
		}),
		queueLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_length",
			Help:      "The number of queue entries awaiting processing, superseded ones included.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.applied, m.superseded, m.dropped, m.stale, m.queueLength)
	}
	return m
}

func (m *Metrics) instrumentApplied(n int) {
	if m == nil || n == 0 {
		return
	}
	m.applied.Add(float64(n))
}

func (m *Metrics) instrumentStale(n int) {
	if m == nil || n == 0 {
		return
	}
	m.stale.Add(float64(n))
}

func (m *Metrics) instrumentSuperseded() {
	if m == nil {
		return
	}
	m.superseded.Inc()
}

func (m *Metrics) instrumentDropped() {
	if m == nil {
		return
	}
	m.dropped.Inc()
}

func (m *Metrics) instrumentQueueLength(n int) {
	if m == nil {
		return
	}
	m.queueLength.Set(float64(n))
}
