package geometry

import "math"

// Segment is the straight line between A and B.
type Segment struct {
	A, B Point
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return Distance(s.A, s.B)
}

// Polygon is a cyclic sequence of vertices describing a convex region.
// Edges join consecutive vertices and the last vertex back to the first.
type Polygon []Point

// Edge returns the edge starting at vertex i.
func (p Polygon) Edge(i int) Segment {
	return Segment{A: p[i], B: p[(i+1)%len(p)]}
}

// IndexOf returns the index of the vertex equal to pt, or -1.
func (p Polygon) IndexOf(pt Point) int {
	for i, v := range p {
		if v == pt {
			return i
		}
	}
	return -1
}

// Neighbors returns the vertices before and after vertex i around the boundary.
func (p Polygon) Neighbors(i int) (prev, next Point) {
	n := len(p)
	return p[(i+n-1)%n], p[(i+1)%n]
}

// Validate reports whether p satisfies the polygon contract: at least three
// vertices, no repeated consecutive vertices, and every turn in the same
// rotational direction.
func (p Polygon) Validate() error {
	if len(p) < 3 {
		return preconditionf("Polygon.Validate", "polygon has %d vertices, need at least 3", len(p))
	}

	winding := Straight
	for i := range p {
		prev, next := p.Neighbors(i)
		if prev == p[i] || next == p[i] {
			return preconditionf("Polygon.Validate", "vertex %d repeats its neighbour", i)
		}
		switch turn := Direction(prev, p[i], next); turn {
		case Straight:
			continue
		case Undefined:
			return preconditionf("Polygon.Validate", "vertex %d is not a finite point", i)
		default:
			if winding == Straight {
				winding = turn
			} else if turn != winding {
				return preconditionf("Polygon.Validate", "vertex %d breaks convexity", i)
			}
		}
	}
	if winding == Straight {
		return preconditionf("Polygon.Validate", "polygon is degenerate (all vertices collinear)")
	}

	// Same-direction turns still allow a star shape that winds more than once.
	var turned float64
	for i := range p {
		prev, next := p.Neighbors(i)
		a, b := p[i].Sub(prev), next.Sub(p[i])
		turned += math.Atan2(Cross(a, b), a.Dot(b))
	}
	if math.Abs(turned) > 2*math.Pi+1e-9 {
		return preconditionf("Polygon.Validate", "polygon self-intersects")
	}

	return nil
}

// World is the set of obstacles a path must avoid.
type World []Polygon

// Validate checks every polygon in the world.
func (w World) Validate() error {
	for _, p := range w {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Path is a polyline from a start position to its last vertex.
type Path []Point

// Length returns the sum of the lengths of the path's segments.
func (p Path) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += Distance(p[i-1], p[i])
	}
	return total
}

// Empty reports whether the path has no vertices.
func (p Path) Empty() bool {
	return len(p) == 0
}
