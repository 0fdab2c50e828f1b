package vispath

import "errors"

// Sentinel errors returned by the Solver.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSolverClosed is returned by Solve and FindPath after Close.
	ErrSolverClosed = errors.New("solver closed")
)
