package yaml

import "github.com/prometheus/client_golang/prometheus"

// Metrics wraps the Prometheus collectors emitted by ParseFromFile,
// SerializeToFile, and Watcher. A nil *Metrics is safe to use — every
// method becomes a no-op — so callers that never wire a registry pay
// nothing beyond a couple of nil checks.
type Metrics struct {
	parseTotal        *prometheus.CounterVec
	parseDuration     prometheus.Histogram
	serializeDuration prometheus.Histogram
}

// NewMetrics registers this package's collectors against reg and
// returns the resulting Metrics. Passing a *prometheus.Registry (or any
// prometheus.Registerer) wires them into that registry's /metrics
// output; pass nil to get an unregistered, still-usable Metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		parseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "goyaml",
			Name:      "parse_total",
			Help:      "Total number of ParseFromFile calls, by result.",
		}, []string{"result"}),
		parseDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "goyaml",
			Name:      "parse_duration_seconds",
			Help:      "ParseFromFile latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
		serializeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "goyaml",
			Name:      "serialize_duration_seconds",
			Help:      "SerializeToFile latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.parseTotal, m.parseDuration, m.serializeDuration)
	}
	return m
}

func (m *Metrics) observeParse(seconds float64, err error) {
	if m == nil {
		return
	}
	m.parseDuration.Observe(seconds)
	if err != nil {
		m.parseTotal.WithLabelValues("error").Inc()
		return
	}
	m.parseTotal.WithLabelValues("ok").Inc()
}

func (m *Metrics) observeSerialize(seconds float64) {
	if m == nil {
		return
	}
	m.serializeDuration.Observe(seconds)
}

// DefaultMetrics is unregistered by default; call NewMetrics(reg) and
// assign the result here to expose it on a registry.
var DefaultMetrics = NewMetrics(nil)
