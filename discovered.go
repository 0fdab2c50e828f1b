package vispath

import (
	"github.com/pdrpinto/vispath/geometry"
	"github.com/puzpuzpuz/xsync/v4"
)

// discovered maps each position to the cheapest node known to reach it.
//
// It is synchronised independently of the fringe, so a queued node may be
// superseded here and still be popped and expanded later.
type discovered struct {
	nodes *xsync.Map[geometry.Point, *node]
}

func newDiscovered() *discovered {
	return &discovered{nodes: xsync.NewMap[geometry.Point, *node]()}
}

// offer records n unless a node at least as cheap already reaches its
// position. It reports whether n was recorded and should enter the fringe.
func (d *discovered) offer(n *node) bool {
	accepted := false
	d.nodes.Compute(n.position(), func(old *node, loaded bool) (*node, xsync.ComputeOp) {
		if loaded && old.cost <= n.cost {
			return old, xsync.CancelOp
		}
		accepted = true
		return n, xsync.UpdateOp
	})
	return accepted
}

func (d *discovered) cost(pos geometry.Point) (float64, bool) {
	n, ok := d.nodes.Load(pos)
	if !ok {
		return 0, false
	}
	return n.cost, true
}

func (d *discovered) size() int {
	return d.nodes.Size()
}

// snapshot copies the best known cost per position.
func (d *discovered) snapshot() map[geometry.Point]float64 {
	out := make(map[geometry.Point]float64, d.nodes.Size())
	d.nodes.Range(func(pos geometry.Point, n *node) bool {
		out[pos] = n.cost
		return true
	})
	return out
}

func (d *discovered) reset() {
	d.nodes.Clear()
}
