package vispath

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pdrpinto/vispath/geometry"
	"github.com/pdrpinto/vispath/internal/logging"
	"github.com/pdrpinto/vispath/internal/metrics"
	"github.com/pdrpinto/vispath/types"
)

// Result contains the outcome of a solve.
type Result struct {
	// ID identifies the solve in log output.
	ID            string
	Path          geometry.Path
	Length        float64
	ExpandedNodes int
	// Workers is the number of goroutines that ran the search.
	Workers int
	Found   bool
}

// Options defines parameters for the solver.
type Options struct {
	NumberOfWorkers int
	Validate        bool
	Logger          types.Logger
	Metrics         types.MetricsCollector
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many background workers the pool starts with.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithValidation enables precondition checking of worlds, starts and goals.
func WithValidation(validate bool) Option {
	return func(options *Options) { options.Validate = validate }
}

// WithLogger sets a logger. Compatible with zap.SugaredLogger.
func WithLogger(logger types.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithMetrics sets a metrics collector.
func WithMetrics(collector types.MetricsCollector) Option {
	return func(options *Options) { options.Metrics = collector }
}

func buildOptions(options []Option) Options {
	opts := Options{
		NumberOfWorkers: DefaultConfig().Workers,
		Logger:          logging.NewNop(),
		Metrics:         metrics.NewNop(),
	}
	for _, option := range options {
		option(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewNop()
	}
	return opts
}

// Solver finds shortest obstacle-avoiding paths with a pool of persistent
// workers.
//
// Solves are serialised: while one runs, the others, as well as pool resizes,
// wait for it to finish.
type Solver struct {
	mu       sync.Mutex
	pool     *workerPool
	search   *search
	validate bool
	closed   bool

	logger  types.Logger
	metrics types.MetricsCollector
}

// New creates a Solver and starts its background workers.
func New(options ...Option) *Solver {
	opts := buildOptions(options)

	s := &Solver{
		search:   newSearch(),
		validate: opts.Validate,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
	}
	s.pool = newWorkerPool(func(int) { s.search.run() })
	for i := 0; i < opts.NumberOfWorkers; i++ {
		s.pool.grow()
	}
	s.metrics.SetPoolSize(s.pool.size() - 1)

	return s
}

// NewFromConfig creates a Solver from cfg. Options are applied after the
// configuration and take precedence.
func NewFromConfig(cfg Config, options ...Option) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base := []Option{WithWorkers(cfg.Workers), WithValidation(cfg.Validation)}
	return New(append(base, options...)...), nil
}

// Solve computes the shortest path from start to goal that avoids every
// polygon of world. When no such path exists the Result has Found set to
// false and an empty Path; that is not an error.
//
// The world must not be modified until Solve returns.
func (s *Solver) Solve(world geometry.World, start, goal geometry.Point) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Result{}, ErrSolverClosed
	}

	id := uuid.NewString()
	if s.validate {
		if err := checkScene(world, start, goal); err != nil {
			s.logger.Warn("solve rejected", "solve_id", id, "error", err)
			return Result{}, err
		}
	}

	began := time.Now()

	s.search.begin(world, start, goal, s.validate)
	s.pool.release()
	s.search.run()
	s.pool.wait()

	result := Result{
		ID:            id,
		ExpandedNodes: int(s.search.expanded.Load()),
		Workers:       s.pool.size(),
	}
	if best := s.search.best.get(); best != nil {
		result.Path = best.path()
		result.Length = best.cost
		result.Found = true
	}
	err := s.search.firstErr()
	accepted, dropped := int(s.search.accepted.Load()), int(s.search.dropped.Load())
	s.search.reset()

	elapsed := time.Since(began)
	if err != nil {
		s.logger.Warn("solve aborted", "solve_id", id, "error", err)
		return Result{}, err
	}

	s.metrics.RecordSolve(elapsed.Seconds(), result.Found)
	s.metrics.RecordExpansions(result.ExpandedNodes)
	s.metrics.RecordDiscoveries(accepted, dropped)
	s.logger.Debug("solve finished",
		"solve_id", id,
		"workers", result.Workers,
		"expanded", result.ExpandedNodes,
		"found", result.Found,
		"length", result.Length,
		"duration", elapsed,
	)

	return result, nil
}

// FindPath returns the shortest collision-free polyline from start to goal,
// or an empty Path when the goal cannot be reached.
func (s *Solver) FindPath(world geometry.World, start, goal geometry.Point) (geometry.Path, error) {
	result, err := s.Solve(world, start, goal)
	if err != nil {
		return nil, err
	}
	return result.Path, nil
}

// AddWorker grows the pool by one persistent worker.
func (s *Solver) AddWorker() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.pool.grow()
	s.metrics.SetPoolSize(s.pool.size() - 1)
	s.logger.Info("worker added", "workers", s.pool.size())
}

// RemoveWorker stops one worker. It does nothing when only the invoking
// goroutine is left.
func (s *Solver) RemoveWorker() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pool.shrink() {
		return
	}
	s.metrics.SetPoolSize(s.pool.size() - 1)
	s.logger.Info("worker removed", "workers", s.pool.size())
}

// WorkerCount returns the number of goroutines that take part in a solve:
// the pool workers plus the caller.
func (s *Solver) WorkerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.size()
}

// Close stops every worker. Later solves fail with ErrSolverClosed.
func (s *Solver) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.pool.close()
	s.metrics.SetPoolSize(0)
}

// checkScene validates the world and makes sure neither endpoint starts
// inside an obstacle.
func checkScene(world geometry.World, start, goal geometry.Point) error {
	if err := world.Validate(); err != nil {
		return err
	}
	for _, endpoint := range []struct {
		name string
		pt   geometry.Point
	}{{"start", start}, {"goal", goal}} {
		if i, inside := geometry.PolygonContaining(world, endpoint.pt); inside && world[i].IndexOf(endpoint.pt) < 0 {
			return &geometry.PreconditionError{
				Op:     "Solve",
				Reason: fmt.Sprintf("%s (%g, %g) lies inside polygon %d", endpoint.name, endpoint.pt.X, endpoint.pt.Y, i),
			}
		}
	}
	return nil
}
