package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "")

	collector.RecordSolve(0.002, true)
	collector.RecordSolve(0.004, false)
	collector.RecordSolve(0.001, true)
	collector.RecordExpansions(40)
	collector.RecordExpansions(2)
	collector.RecordDiscoveries(30, 12)
	collector.SetPoolSize(3)

	require.Equal(t, 2.0, testutil.ToFloat64(collector.solves.WithLabelValues("found")))
	require.Equal(t, 1.0, testutil.ToFloat64(collector.solves.WithLabelValues("unreachable")))
	require.Equal(t, 42.0, testutil.ToFloat64(collector.expansions))
	require.Equal(t, 30.0, testutil.ToFloat64(collector.discoveries.WithLabelValues("accepted")))
	require.Equal(t, 12.0, testutil.ToFloat64(collector.discoveries.WithLabelValues("dropped")))
	require.Equal(t, 3.0, testutil.ToFloat64(collector.poolWorkers))

	count, err := testutil.GatherAndCount(reg, "vispath_solver_solve_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestPrometheusCollector_CustomNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "planner")
	collector.SetPoolSize(1)

	count, err := testutil.GatherAndCount(reg, "planner_pool_workers")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestNopMetrics(t *testing.T) {
	m := NewNop()
	require.NotPanics(t, func() {
		m.RecordSolve(1, true)
		m.RecordExpansions(1)
		m.RecordDiscoveries(1, 1)
		m.SetPoolSize(1)
	})
}
