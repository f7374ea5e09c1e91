package server

import "github.com/prometheus/client_golang/prometheus"

// metrics holds the server's prometheus instrumentation, registered once
// at construction and updated from the RPC handlers.
type metrics struct {
	opsTotal     *prometheus.CounterVec
	filtersTotal prometheus.Gauge
	opDuration   *prometheus.HistogramVec
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		opsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chain_ops_total",
			Help:      "Number of chain operations processed, by op and result.",
		}, []string{"op", "result"}),
		filtersTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "chain_filters_total",
			Help:      "Number of filters in the chain most recently observed by an Info call.",
		}),
		opDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chain_op_duration_seconds",
			Help:      "Latency of chain operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
	for _, c := range []prometheus.Collector{m.opsTotal, m.filtersTotal, m.opDuration} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
