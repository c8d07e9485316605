package provider

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeCreated     = "created"
	outcomeFailed      = "failed"
	outcomeUnavailable = "unavailable"
)

// BuildMetrics records registry build outcomes. A nil *BuildMetrics is a no-op.
type BuildMetrics struct {
	builds    *prometheus.CounterVec
	available *prometheus.GaugeVec
}

// NewBuildMetrics creates the collectors and registers them with reg
func NewBuildMetrics(reg prometheus.Registerer) (*BuildMetrics, error) {
	m := &BuildMetrics{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tambourine",
			Subsystem: "provider",
			Name:      "builds_total",
			Help:      "Provider construction attempts by outcome.",
		}, []string{"kind", "provider", "outcome"}),
		available: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "tambourine",
			Subsystem: "provider",
			Name:      "available",
			Help:      "Number of constructed providers per kind.",
		}, []string{"kind"}),
	}

	for _, c := range []prometheus.Collector{m.builds, m.available} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *BuildMetrics) observe(kind Kind, id ID, outcome string) {
	if m == nil {
		return
	}
	m.builds.WithLabelValues(string(kind), string(id), outcome).Inc()
}

func (m *BuildMetrics) setAvailable(kind Kind, n int) {
	if m == nil {
		return
	}
	m.available.WithLabelValues(string(kind)).Set(float64(n))
}
