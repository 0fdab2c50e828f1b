package vispath

import (
	"container/heap"
	"sync"

	"github.com/pdrpinto/vispath/geometry"
	"github.com/pdrpinto/vispath/internal"
)

// node is a search state: a position and the node it was reached from.
// Nodes are never mutated once built, so chains may be shared.
type node struct {
	pos    geometry.Point
	parent *node
	cost   float64 // length of the path from the start
	f      float64 // cost plus straight-line distance to the goal
}

func newStartNode(start, goal geometry.Point) *node {
	return &node{
		pos: start,
		f:   geometry.Distance(start, goal),
	}
}

func (n *node) position() geometry.Point {
	return n.pos
}

// extend returns the node reached by walking straight from n to next.
func (n *node) extend(next, goal geometry.Point) *node {
	cost := n.cost + geometry.Distance(n.pos, next)
	return &node{
		pos:    next,
		parent: n,
		cost:   cost,
		f:      cost + geometry.Distance(next, goal),
	}
}

// path materialises the polyline from the start to n.
func (n *node) path() geometry.Path {
	return internal.ReconstructPath(n,
		func(n *node) geometry.Point { return n.pos },
		func(n *node) (*node, bool) { return n.parent, n.parent != nil },
	)
}

type nodeQueue []*node

func (queue nodeQueue) Len() int           { return len(queue) }
func (queue nodeQueue) Less(i, j int) bool { return queue[i].f < queue[j].f }
func (queue nodeQueue) Swap(i, j int)      { queue[i], queue[j] = queue[j], queue[i] }

func (queue *nodeQueue) Push(x any) {
	*queue = append(*queue, x.(*node))
}

func (queue *nodeQueue) Pop() any {
	old := *queue
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*queue = old[:n-1]
	return item
}

// fringe is the open set shared by every worker of a solve, ordered by f.
// It has its own lock, independent of the discovered set.
type fringe struct {
	mu    sync.Mutex
	queue nodeQueue
}

func (fr *fringe) push(n *node) {
	fr.mu.Lock()
	heap.Push(&fr.queue, n)
	fr.mu.Unlock()
}

// pop removes the node with the lowest f. ok is false when the fringe is empty.
func (fr *fringe) pop() (n *node, ok bool) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	if fr.queue.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&fr.queue).(*node), true
}

func (fr *fringe) len() int {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	return fr.queue.Len()
}

// positions lists the positions currently queued, in heap order.
func (fr *fringe) positions() []geometry.Point {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	out := make([]geometry.Point, len(fr.queue))
	for i, n := range fr.queue {
		out[i] = n.position()
	}
	return out
}

func (fr *fringe) reset() {
	fr.mu.Lock()
	fr.queue = nil
	fr.mu.Unlock()
}
