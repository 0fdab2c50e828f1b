package vispath

// worker is a background goroutine that survives across solves. Between
// solves it is parked on start; after each run it reports on done.
type worker struct {
	id     int
	start  chan struct{}
	done   chan struct{}
	exited chan struct{}
}

func (w *worker) loop(run func(workerID int)) {
	defer close(w.exited)
	for range w.start {
		run(w.id)
		w.done <- struct{}{}
	}
}

// workerPool owns the persistent workers. It is not safe for concurrent use;
// the Solver serialises every call.
type workerPool struct {
	workers []*worker
	run     func(workerID int)
	nextID  int
}

func newWorkerPool(run func(workerID int)) *workerPool {
	return &workerPool{run: run}
}

// grow starts one more parked worker.
func (p *workerPool) grow() {
	p.nextID++
	w := &worker{
		id:     p.nextID,
		start:  make(chan struct{}),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go w.loop(p.run)
	p.workers = append(p.workers, w)
}

// shrink stops and joins the most recently added worker. It reports false
// when the pool is already empty.
func (p *workerPool) shrink() bool {
	n := len(p.workers)
	if n == 0 {
		return false
	}
	w := p.workers[n-1]
	p.workers[n-1] = nil
	p.workers = p.workers[:n-1]

	close(w.start)
	<-w.exited
	return true
}

// size is the degree of parallelism of a solve: the workers plus the
// invoking goroutine.
func (p *workerPool) size() int {
	return len(p.workers) + 1
}

// release wakes every worker.
func (p *workerPool) release() {
	for _, w := range p.workers {
		w.start <- struct{}{}
	}
}

// wait blocks until every released worker has finished its run.
func (p *workerPool) wait() {
	for _, w := range p.workers {
		<-w.done
	}
}

func (p *workerPool) close() {
	for p.shrink() {
	}
}
