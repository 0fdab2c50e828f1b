package geometry

import "math"

// Epsilon is the slack SegmentIntersectsPolygon grants on every axis so that
// a segment ending on a polygon's boundary is not reported as intersecting it.
// Projections use unnormalised edge normals, so the slack is measured in
// projected units rather than in world units.
const Epsilon = 0.001

// SegmentsIntersect reports whether l1 and l2 cross. Each segment is projected
// onto the normal of the other, translated so the other segment maps to zero;
// the segments cross only when both projections straddle zero. The test is
// exact and has no tolerance.
func SegmentsIntersect(l1, l2 Segment) bool {
	return straddles(l1, l2) && straddles(l2, l1)
}

func straddles(toProject, normalOf Segment) bool {
	normal := Normal(normalOf.A.Sub(normalOf.B))
	a := toProject.A.Sub(normalOf.B).Dot(normal)
	b := toProject.B.Sub(normalOf.B).Dot(normal)
	return math.Signbit(a) != math.Signbit(b)
}

// PointInPolygon reports whether pt lies within the convex polygon p,
// boundary included. It returns false for a polygon with fewer than three
// vertices.
func PointInPolygon(p Polygon, pt Point) bool {
	if len(p) < 3 {
		return false
	}
	for i := range p {
		normal := Normal(p.Edge(i).B.Sub(p[i]))
		lo, hi := project(p, normal)
		if m := pt.Dot(normal); lo > m || m > hi {
			return false
		}
	}
	return true
}

// PointInPolygonChecked is PointInPolygon with the vertex-count precondition
// reported as an error.
func PointInPolygonChecked(p Polygon, pt Point) (bool, error) {
	if len(p) < 3 {
		return false, preconditionf("PointInPolygon", "polygon has %d vertices, need at least 3", len(p))
	}
	return PointInPolygon(p, pt), nil
}

// SegmentIntersectsPolygon reports whether s overlaps the convex polygon p by
// more than Epsilon on every separating axis candidate: the segment's own
// normal and each edge normal of p. A segment that only touches the boundary,
// for instance one ending on a vertex, does not intersect. It returns false
// for a polygon with fewer than three vertices.
func SegmentIntersectsPolygon(p Polygon, s Segment) bool {
	if len(p) < 3 {
		return false
	}

	normal := Normal(s.A.Sub(s.B))
	lo, hi := project(p, normal)
	if m := s.B.Dot(normal); lo > m-Epsilon || m+Epsilon > hi {
		return false
	}

	for i := range p {
		normal := Normal(p.Edge(i).B.Sub(p[i]))
		polyLo, polyHi := project(p, normal)
		segLo, segHi := minmax(s.A.Dot(normal), s.B.Dot(normal))
		if polyLo > segHi-Epsilon || segLo+Epsilon > polyHi {
			return false
		}
	}
	return true
}

// SegmentIntersectsPolygonChecked is SegmentIntersectsPolygon with the
// vertex-count precondition reported as an error.
func SegmentIntersectsPolygonChecked(p Polygon, s Segment) (bool, error) {
	if len(p) < 3 {
		return false, preconditionf("SegmentIntersectsPolygon", "polygon has %d vertices, need at least 3", len(p))
	}
	return SegmentIntersectsPolygon(p, s), nil
}

// SegmentIntersectsWorld reports whether s intersects any polygon of w.
func SegmentIntersectsWorld(w World, s Segment) bool {
	for _, p := range w {
		if SegmentIntersectsPolygon(p, s) {
			return true
		}
	}
	return false
}

// PolygonContaining returns the index of the first polygon of w that
// contains pt.
func PolygonContaining(w World, pt Point) (int, bool) {
	for i, p := range w {
		if PointInPolygon(p, pt) {
			return i, true
		}
	}
	return -1, false
}

// AngularExtrema returns the silhouette vertices of p as seen from viewpoint:
// the vertices bounding the angle p subtends. left is the extremum in the
// counter-clockwise sense and right the clockwise one, using the
// screen-space convention of Direction. Ties keep the first minimal and the
// last maximal vertex.
//
// The viewpoint must lie outside p; this is not checked. For a polygon
// without vertices both results are the zero Point.
func AngularExtrema(p Polygon, viewpoint Point) (left, right Point) {
	if len(p) == 0 {
		return Point{}, Point{}
	}

	// less orders vertices by the direction in which they are seen.
	less := func(a, b Point) bool {
		return Direction(a, viewpoint, b) == CounterClockwise
	}

	left, right = p[0], p[0]
	for _, v := range p[1:] {
		if less(v, left) {
			left = v
		}
		if !less(v, right) {
			right = v
		}
	}
	return left, right
}

// AngularExtremaChecked is AngularExtrema with its preconditions reported as
// an error: p must have at least three vertices and viewpoint must lie
// outside it.
func AngularExtremaChecked(p Polygon, viewpoint Point) (left, right Point, err error) {
	inside, err := PointInPolygonChecked(p, viewpoint)
	if err != nil {
		return Point{}, Point{}, err
	}
	if inside {
		return Point{}, Point{}, preconditionf("AngularExtrema",
			"viewpoint (%g, %g) lies inside the polygon", viewpoint.X, viewpoint.Y)
	}
	left, right = AngularExtrema(p, viewpoint)
	return left, right, nil
}

func project(p Polygon, axis Point) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range p {
		d := v.Dot(axis)
		lo = min(lo, d)
		hi = max(hi, d)
	}
	return lo, hi
}

func minmax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}
