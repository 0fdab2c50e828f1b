// Package vispath finds shortest obstacle-avoiding paths in the plane.
//
// Obstacles are convex polygons. Instead of building the full visibility
// graph up front, the search expands it lazily: from any position the only
// useful next stops are the goal, when it is in sight, and the silhouette
// vertices of each polygon as seen from there.
//
// It exposes two main entry points:
//
//   - Solver: run an A* search on a persistent pool of workers and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// Every worker of a Solver pops from one shared fringe and records costs in
// one shared discovered set, each under its own lock. A worker stops once the
// fringe is empty or the cheapest queued node cannot beat the best complete
// path, so the returned path is the cheapest any worker found.
package vispath
