package types

// MetricsCollector receives solver instrumentation.
//
// Implementations must be safe for concurrent use: discovery counts are
// reported once per solve, but several solvers may share one collector.
type MetricsCollector interface {
	// RecordSolve records the wall-clock duration of one solve and whether a
	// path was found.
	RecordSolve(seconds float64, found bool)

	// RecordExpansions records how many search nodes one solve expanded.
	RecordExpansions(count int)

	// RecordDiscoveries records how many successor nodes one solve accepted
	// into the fringe and how many it dropped as dominated.
	RecordDiscoveries(accepted, dropped int)

	// SetPoolSize reports the number of background workers in the pool.
	SetPoolSize(workers int)
}
