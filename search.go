package vispath

import (
	"sync"
	"sync/atomic"

	"github.com/pdrpinto/vispath/geometry"
	"github.com/pdrpinto/vispath/internal/visgraph"
)

// bestSolution holds the cheapest complete path found so far.
type bestSolution struct {
	mu   sync.Mutex
	node *node
}

// offer replaces the current best with n if n is cheaper.
func (b *bestSolution) offer(n *node) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.node != nil && b.node.cost <= n.cost {
		return false
	}
	b.node = n
	return true
}

// dominates reports whether a complete path no more expensive than n exists.
func (b *bestSolution) dominates(n *node) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.node != nil && n.cost >= b.node.cost
}

func (b *bestSolution) get() *node {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.node
}

func (b *bestSolution) reset() {
	b.mu.Lock()
	b.node = nil
	b.mu.Unlock()
}

type stepOutcome int

const (
	stepExpanded  stepOutcome = iota // a node was expanded
	stepGoal                         // a complete path was popped
	stepExhausted                    // the fringe was empty
	stepPruned                       // the popped node cannot beat the best path
	stepFailed                       // a checked query rejected the world
)

// search is the state shared by every thread taking part in one solve.
type search struct {
	world    geometry.World
	goal     geometry.Point
	validate bool

	fringe     fringe
	discovered *discovered
	best       bestSolution

	expanded atomic.Int64
	accepted atomic.Int64
	dropped  atomic.Int64

	failed atomic.Bool
	errMu  sync.Mutex
	err    error
}

func newSearch() *search {
	return &search{discovered: newDiscovered()}
}

// begin seeds the search with the start node.
func (s *search) begin(world geometry.World, start, goal geometry.Point, validate bool) {
	s.world = world
	s.goal = goal
	s.validate = validate
	s.discover(newStartNode(start, goal))
}

// discover records n in the discovered set and, if it survives, queues it.
func (s *search) discover(n *node) {
	if !s.discovered.offer(n) {
		s.dropped.Add(1)
		return
	}
	s.accepted.Add(1)
	s.fringe.push(n)
}

// step runs one iteration of the expansion loop.
func (s *search) step() (*node, stepOutcome) {
	if s.failed.Load() {
		return nil, stepFailed
	}

	n, ok := s.fringe.pop()
	if !ok {
		return nil, stepExhausted
	}

	// Costs only grow along a path, so nothing reachable from n can beat the
	// best complete path.
	if s.best.dominates(n) {
		return n, stepPruned
	}

	if n.position() == s.goal {
		s.best.offer(n)
		return n, stepGoal
	}

	var next []geometry.Point
	if s.validate {
		var err error
		if next, err = visgraph.SuccessorsChecked(s.world, n.position(), s.goal); err != nil {
			s.fail(err)
			return n, stepFailed
		}
	} else {
		next = visgraph.Successors(s.world, n.position(), s.goal)
	}

	s.expanded.Add(1)
	for _, pos := range next {
		s.discover(n.extend(pos, s.goal))
	}
	return n, stepExpanded
}

// run is the expansion loop executed by the invoking goroutine and by every
// pool worker.
func (s *search) run() {
	for {
		switch _, outcome := s.step(); outcome {
		case stepExhausted, stepPruned, stepFailed:
			return
		}
	}
}

// fail records the first error of the solve and stops every thread at its
// next iteration.
func (s *search) fail(err error) {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	if s.err == nil {
		s.err = err
	}
	s.failed.Store(true)
}

func (s *search) firstErr() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

// reset clears all shared state so the search can serve the next solve.
func (s *search) reset() {
	s.fringe.reset()
	s.discovered.reset()
	s.best.reset()
	s.world = nil
	s.expanded.Store(0)
	s.accepted.Store(0)
	s.dropped.Store(0)
	s.failed.Store(false)
	s.errMu.Lock()
	s.err = nil
	s.errMu.Unlock()
}
