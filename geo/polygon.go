package geo

import "errors"

// ErrTooFewPoints is returned when a polygon is built from fewer than
// three vertices.
var ErrTooFewPoints = errors.New("geo: polygon needs at least 3 points")

// ErrDuplicatePoint is returned when two vertices of a polygon coincide.
var ErrDuplicatePoint = errors.New("geo: polygon vertices must be pairwise distinct")

// ErrSelfIntersectingPolygon is returned when two non-adjacent edges of
// a polygon intersect.
var ErrSelfIntersectingPolygon = errors.New("geo: polygon edges must not self-intersect")

// Polygon is a simple (non-self-intersecting) planar polygon with at
// least three vertices, stored in traversal order.
type Polygon struct {
	points []Point
}

// NewPolygon validates points and builds a Polygon from them. It
// rejects fewer than three vertices, coincident vertices and polygons
// whose non-adjacent edges intersect.
func NewPolygon(points []Point) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, ErrTooFewPoints
	}

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].Equal(points[j]) {
				return Polygon{}, ErrDuplicatePoint
			}
		}
	}

	cp := make([]Point, len(points))
	copy(cp, points)
	poly := Polygon{points: cp}

	if poly.selfIntersects() {
		return Polygon{}, ErrSelfIntersectingPolygon
	}

	return poly, nil
}

// MustNewPolygon is like NewPolygon but panics on error. Intended for
// call sites building a polygon from a construction known to be valid
// (a rectangle's corners, a generator's accepted draw).
func MustNewPolygon(points []Point) Polygon {
	p, err := NewPolygon(points)
	if err != nil {
		panic(err)
	}

	return p
}

// NewSquarePolygon builds a CCW square polygon of the given side length
// with bottomLeft as its lower-left corner.
func NewSquarePolygon(bottomLeft Point, side Unit) Polygon {
	return MustNewPolygon([]Point{
		bottomLeft,
		NewPoint(bottomLeft.X+side, bottomLeft.Y),
		NewPoint(bottomLeft.X+side, bottomLeft.Y+side),
		NewPoint(bottomLeft.X, bottomLeft.Y+side),
	})
}

// Points returns a copy of the polygon's vertices in traversal order.
func (p Polygon) Points() []Point {
	cp := make([]Point, len(p.points))
	copy(cp, p.points)

	return cp
}

// edges returns the polygon's edges in traversal order, each edge i
// running from points[i] to points[i+1 mod n].
func (p Polygon) edges() []Segment {
	n := len(p.points)
	out := make([]Segment, n)
	for i := 0; i < n; i++ {
		out[i] = NewSegment(p.points[i], p.points[(i+1)%n])
	}

	return out
}

// selfIntersects reports whether any two non-adjacent edges intersect.
func (p Polygon) selfIntersects() bool {
	edges := p.edges()
	n := len(edges)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			if edges[i].Intersects(edges[j]) {
				return true
			}
		}
	}

	return false
}

// signedArea returns the shoelace sum; positive for a CCW polygon,
// negative for a clockwise one.
func (p Polygon) signedArea() Unit {
	sum := Unit(0)
	n := len(p.points)
	for i := 0; i < n; i++ {
		a, b := p.points[i], p.points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}

	return sum / 2
}

// Area returns the polygon's area.
func (p Polygon) Area() Unit {
	a := p.signedArea()
	if a < 0 {
		return -a
	}

	return a
}

// IsClockwise reports whether the polygon's vertices are wound
// clockwise.
func (p Polygon) IsClockwise() bool {
	return p.signedArea() < 0
}

// Revert returns the polygon with its vertex order reversed.
func (p Polygon) Revert() Polygon {
	n := len(p.points)
	rev := make([]Point, n)
	for i, pt := range p.points {
		rev[n-1-i] = pt
	}

	return Polygon{points: rev}
}

// Clockwise returns the polygon wound clockwise, reverting it first if
// it is currently wound counter-clockwise.
func (p Polygon) Clockwise() Polygon {
	if p.IsClockwise() {
		return p
	}

	return p.Revert()
}

// Frame returns the smallest axis-aligned rectangle containing p.
func (p Polygon) Frame() Rectangle {
	minX, minY := p.points[0].X, p.points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p.points[1:] {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}

	return NewRectangle(NewPoint(minX, minY), NewPoint(maxX, maxY))
}

// Contains reports whether pt lies inside p, using a horizontal ray cast
// from pt toward +X against every edge. Edges are treated as half-open
// on Y (one endpoint inclusive, the other exclusive) so a ray passing
// exactly through a vertex is counted once rather than zero or two
// times. Points exactly on the boundary are not treated uniformly: for
// an axis-aligned square, a point in the middle of the bottom or left
// edge is reported inside, one in the middle of the top or right edge
// is not.
func (p Polygon) Contains(pt Point) bool {
	inside := false
	n := len(p.points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.points[i], p.points[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			xCross := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if pt.X < xCross {
				inside = !inside
			}
		}
	}

	return inside
}

// ContainsPolygon reports whether other lies entirely inside p. Since
// polygons in a containment forest never cross each other's edges, a
// single representative vertex of other is sufficient to decide full
// containment.
func (p Polygon) ContainsPolygon(other Polygon) bool {
	return p.Contains(other.points[0])
}

// Intersects reports whether any edge of p crosses any edge of other.
func (p Polygon) Intersects(other Polygon) bool {
	for _, e := range p.edges() {
		for _, o := range other.edges() {
			if e.Intersects(o) {
				return true
			}
		}
	}

	return false
}
