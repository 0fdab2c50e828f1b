package metrics

import (
	"sync"

	"github.com/pdrpinto/vispath/types"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are created and registered on first use.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	solveDuration *prometheus.HistogramVec
	solves        *prometheus.CounterVec
	expansions    prometheus.Counter
	discoveries   *prometheus.CounterVec
	poolWorkers   prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: metrics namespace (defaults to "vispath" if empty)
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "vispath"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.solveDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock duration of path solves in seconds by result.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
		}, []string{"result"})

		p.solves = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "solves_total",
			Help:      "Total solves by result (found, unreachable).",
		}, []string{"result"})

		p.expansions = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "expanded_nodes_total",
			Help:      "Total search nodes expanded across all workers.",
		})

		p.discoveries = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "discovered_nodes_total",
			Help:      "Total successor nodes by outcome (accepted, dropped).",
		}, []string{"outcome"})

		p.poolWorkers = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "pool",
			Name:      "workers",
			Help:      "Background workers currently in the pool.",
		})

		p.reg.MustRegister(
			p.solveDuration,
			p.solves,
			p.expansions,
			p.discoveries,
			p.poolWorkers,
		)
	})
}

func result(found bool) string {
	if found {
		return "found"
	}
	return "unreachable"
}

// RecordSolve observes the solve duration and counts the solve by result.
func (p *PrometheusCollector) RecordSolve(seconds float64, found bool) {
	p.ensureRegistered()
	p.solveDuration.WithLabelValues(result(found)).Observe(seconds)
	p.solves.WithLabelValues(result(found)).Inc()
}

// RecordExpansions adds to the expanded node counter.
func (p *PrometheusCollector) RecordExpansions(count int) {
	p.ensureRegistered()
	p.expansions.Add(float64(count))
}

// RecordDiscoveries adds to the accepted and dropped discovery counters.
func (p *PrometheusCollector) RecordDiscoveries(accepted, dropped int) {
	p.ensureRegistered()
	p.discoveries.WithLabelValues("accepted").Add(float64(accepted))
	p.discoveries.WithLabelValues("dropped").Add(float64(dropped))
}

// SetPoolSize sets the pool worker gauge.
func (p *PrometheusCollector) SetPoolSize(workers int) {
	p.ensureRegistered()
	p.poolWorkers.Set(float64(workers))
}
