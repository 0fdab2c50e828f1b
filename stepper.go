package vispath

import (
	"github.com/pdrpinto/vispath/geometry"
)

// StepSnapshot exposes the per-iteration state of the search.
type StepSnapshot struct {
	Current geometry.Point
	// Open lists the queued positions. A position may appear more than once
	// when a cheaper route to it was found after it was queued.
	Open []geometry.Point
	// Discovered holds the cheapest known cost to reach each position.
	Discovered map[geometry.Point]float64
	// Path is the best complete path found so far, if any.
	Path      geometry.Path
	Done      bool
	Found     bool
	StepIndex int
}

// Stepper runs the search on the calling goroutine one expansion at a time,
// for UIs and debugging tools. It uses the same expansion loop as Solver.
type Stepper struct {
	search    *search
	stepCount int
	done      bool
}

// NewStepper creates a Stepper for one start/goal pair. Only the validation
// option applies; the stepper never uses background workers.
func NewStepper(world geometry.World, start, goal geometry.Point, options ...Option) (*Stepper, error) {
	opts := buildOptions(options)
	if opts.Validate {
		if err := checkScene(world, start, goal); err != nil {
			opts.Logger.Warn("stepper rejected", "error", err)
			return nil, err
		}
	}

	s := &Stepper{search: newSearch()}
	s.search.begin(world, start, goal, opts.Validate)
	return s, nil
}

// Step advances the search by one popped node and returns a snapshot.
// Once the search is done further calls return the final snapshot again.
func (s *Stepper) Step() (StepSnapshot, error) {
	if s.done {
		return s.snapshot(geometry.Point{}), s.search.firstErr()
	}

	s.stepCount++
	n, outcome := s.search.step()

	var current geometry.Point
	if n != nil {
		current = n.position()
	}

	switch outcome {
	case stepExhausted, stepPruned:
		s.done = true
	case stepFailed:
		s.done = true
		return s.snapshot(current), s.search.firstErr()
	}

	return s.snapshot(current), nil
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool {
	return s.done
}

func (s *Stepper) snapshot(current geometry.Point) StepSnapshot {
	snap := StepSnapshot{
		Current:    current,
		Open:       s.search.fringe.positions(),
		Discovered: s.search.discovered.snapshot(),
		Done:       s.done,
		StepIndex:  s.stepCount,
	}
	if best := s.search.best.get(); best != nil {
		snap.Path = best.path()
		snap.Found = s.done
	}
	return snap
}
