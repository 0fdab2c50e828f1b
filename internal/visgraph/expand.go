// Package visgraph derives visibility-graph edges on demand.
//
// The graph joins the start, the goal and every obstacle vertex that can see
// each other. It is never stored; Successors materialises the outgoing edges of
// a single position when the search expands it.
package visgraph

import "github.com/pdrpinto/vispath/geometry"

// Successors returns the positions reachable in one straight move from pos:
//
//   - goal, when the segment to it is unobstructed;
//   - for each polygon that has pos as a vertex, the two neighbouring
//     vertices along its boundary;
//   - for every other polygon, those of its two silhouette vertices seen
//     from pos that are unobstructed.
//
// The same position may be returned more than once.
func Successors(world geometry.World, pos, goal geometry.Point) []geometry.Point {
	out := make([]geometry.Point, 0, 2*len(world)+1)

	if !geometry.SegmentIntersectsWorld(world, geometry.Segment{A: pos, B: goal}) {
		out = append(out, goal)
	}

	for _, polygon := range world {
		if i := polygon.IndexOf(pos); i >= 0 {
			prev, next := polygon.Neighbors(i)
			out = append(out, prev, next)
			continue
		}

		left, right := geometry.AngularExtrema(polygon, pos)
		for _, v := range [2]geometry.Point{left, right} {
			if !geometry.SegmentIntersectsWorld(world, geometry.Segment{A: pos, B: v}) {
				out = append(out, v)
			}
		}
	}

	return out
}

// SuccessorsChecked is Successors for validated worlds: it fails instead of
// computing a silhouette from a viewpoint inside a polygon.
func SuccessorsChecked(world geometry.World, pos, goal geometry.Point) ([]geometry.Point, error) {
	for _, polygon := range world {
		if polygon.IndexOf(pos) >= 0 {
			continue
		}
		if _, _, err := geometry.AngularExtremaChecked(polygon, pos); err != nil {
			return nil, err
		}
	}
	return Successors(world, pos, goal), nil
}
