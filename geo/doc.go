// Package geo provides the 2D planar primitives the containment-forest
// builders are layered on top of: Point, Vector, Segment, Polygon and
// Rectangle, plus the predicates that decide orientation, secancy and
// containment between them.
//
// Everything here is floating-point with an absolute tolerance. Unit is
// float64 and Epsilon (1e-5) governs every equality, collinearity and
// orthogonality test in the package — there is no exact-arithmetic mode
// and none is planned; adversarial near-coincident geometry is out of
// scope (see NewPolygon's validation rules).
//
// Construction invariants are enforced by panicking rather than
// returning an error: NewSegment rejects coincident endpoints and
// NewRectangle rejects coincident corners, because a segment or
// rectangle build from equal points is a programming error, not a
// recoverable runtime condition. The runtime failures that are returned
// as errors are normalizing the zero vector (Vector.Unit returns
// ErrZeroNorm instead of a sentinel zero vector) and building a Polygon
// from invalid vertices (NewPolygon returns ErrTooFewPoints,
// ErrDuplicatePoint or ErrSelfIntersectingPolygon).
//
// Polygon.Contains(Point) uses a horizontal ray cast toward +X with
// edges half-open on Y, so a ray passing through a vertex is counted
// once — see the comment on Polygon.Contains for the exact convention,
// including how boundary points are reported.
package geo
