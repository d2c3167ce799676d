// Package forest computes the containment forest of a set of simple
// planar polygons: for every polygon, the smallest polygon (if any)
// that directly encloses it, expressed as a [tree.Node] forest rooted
// at a virtual node carrying index -1.
//
// Three interchangeable algorithms are provided behind a single
// Build entry point, selected by an Algorithm value rather than a
// build tag, since a CLI needs all three available at runtime:
//
//   - Naive descends each polygon through its current siblings one
//     re-parenting at a time, bounded by O(n) re-parentings per
//     polygon and O(n) work per re-parenting.
//   - Frames pre-filters with axis-aligned bounding rectangles, which
//     are cheap to compare, then repairs the handful of places the
//     rectangle approximation over-included a polygon.
//   - DAC recursively splits the plane and merges the two halves'
//     sub-forests, falling back to the naive algorithm whenever a
//     split makes no progress.
//
// All three agree on every valid input; they differ only in how much
// work they do to get there.
package forest
