// Package geometry holds the planar primitives used by the path solver:
// points, segments, convex polygons, worlds and paths, plus the visibility
// predicates the search is built on.
//
// Every function in this package is pure and may be called concurrently
// without synchronisation. Intersection tests use the separating axis theorem:
// two convex shapes are disjoint if their projections onto some edge normal
// of either shape do not overlap.
//
// Queries with preconditions come in two flavours. The plain form returns a
// degenerate value when called outside its contract; the Checked form
// returns a *PreconditionError instead.
package geometry
