package geo

// Rectangle is an axis-aligned rectangle described by its bottom-left
// and top-right corners. The invariant bottomLeft.X <= topRight.X and
// bottomLeft.Y <= topRight.Y is the caller's responsibility; NewRectangle
// only rejects the degenerate case of coincident corners.
type Rectangle struct {
	bottomLeft, topRight Point
}

// NewRectangle builds a Rectangle from its bottom-left and top-right
// corners. It panics if the corners coincide.
func NewRectangle(bottomLeft, topRight Point) Rectangle {
	if bottomLeft.Equal(topRight) {
		panic("geo: rectangle corners must be distinct")
	}

	return Rectangle{bottomLeft: bottomLeft, topRight: topRight}
}

// NewSquare builds an axis-aligned square of the given side length with
// bottomLeft as its lower-left corner.
func NewSquare(bottomLeft Point, side Unit) Rectangle {
	return NewRectangle(bottomLeft, NewPoint(bottomLeft.X+side, bottomLeft.Y+side))
}

// BottomLeft returns the rectangle's bottom-left corner.
func (r Rectangle) BottomLeft() Point {
	return r.bottomLeft
}

// TopRight returns the rectangle's top-right corner.
func (r Rectangle) TopRight() Point {
	return r.topRight
}

// Width returns the rectangle's extent along X.
func (r Rectangle) Width() Unit {
	return r.topRight.X - r.bottomLeft.X
}

// Height returns the rectangle's extent along Y.
func (r Rectangle) Height() Unit {
	return r.topRight.Y - r.bottomLeft.Y
}

// IsSquare reports whether the rectangle's width and height match.
func (r Rectangle) IsSquare() bool {
	return approxEqual(r.Width(), r.Height())
}

// ContainsPoint reports whether p lies strictly inside r.
func (r Rectangle) ContainsPoint(p Point) bool {
	return p.X > r.bottomLeft.X+Epsilon && p.X < r.topRight.X-Epsilon &&
		p.Y > r.bottomLeft.Y+Epsilon && p.Y < r.topRight.Y-Epsilon
}

// Contains reports whether other lies strictly inside r.
func (r Rectangle) Contains(other Rectangle) bool {
	return other.bottomLeft.X > r.bottomLeft.X+Epsilon &&
		other.bottomLeft.Y > r.bottomLeft.Y+Epsilon &&
		other.topRight.X < r.topRight.X-Epsilon &&
		other.topRight.Y < r.topRight.Y-Epsilon
}

// Polygon returns r as a CCW four-vertex polygon starting at the
// bottom-left corner.
func (r Rectangle) Polygon() Polygon {
	return MustNewPolygon([]Point{
		r.bottomLeft,
		NewPoint(r.topRight.X, r.bottomLeft.Y),
		r.topRight,
		NewPoint(r.bottomLeft.X, r.topRight.Y),
	})
}

// DivideVertically splits r into a left and a right half of equal
// width, along with the vertical segment separating them, oriented
// from the bottom of the split to the top.
func (r Rectangle) DivideVertically() (left, right Rectangle, separator Segment) {
	mid := (r.bottomLeft.X + r.topRight.X) / 2
	left = NewRectangle(r.bottomLeft, NewPoint(mid, r.topRight.Y))
	right = NewRectangle(NewPoint(mid, r.bottomLeft.Y), r.topRight)
	separator = NewSegment(NewPoint(mid, r.bottomLeft.Y), NewPoint(mid, r.topRight.Y))

	return left, right, separator
}

// DivideHorizontally splits r into a bottom and a top half of equal
// height, along with the horizontal segment separating them, oriented
// from the left of the split to the right.
func (r Rectangle) DivideHorizontally() (bottom, top Rectangle, separator Segment) {
	mid := (r.bottomLeft.Y + r.topRight.Y) / 2
	bottom = NewRectangle(r.bottomLeft, NewPoint(r.topRight.X, mid))
	top = NewRectangle(NewPoint(r.bottomLeft.X, mid), r.topRight)
	separator = NewSegment(NewPoint(r.bottomLeft.X, mid), NewPoint(r.topRight.X, mid))

	return bottom, top, separator
}

// BoundingRectangle returns the smallest rectangle containing every
// rectangle in rs. It panics if rs is empty.
func BoundingRectangle(rs []Rectangle) Rectangle {
	if len(rs) == 0 {
		panic("geo: cannot bound an empty set of rectangles")
	}

	minX, minY := rs[0].bottomLeft.X, rs[0].bottomLeft.Y
	maxX, maxY := rs[0].topRight.X, rs[0].topRight.Y
	for _, r := range rs[1:] {
		if r.bottomLeft.X < minX {
			minX = r.bottomLeft.X
		}
		if r.bottomLeft.Y < minY {
			minY = r.bottomLeft.Y
		}
		if r.topRight.X > maxX {
			maxX = r.topRight.X
		}
		if r.topRight.Y > maxY {
			maxY = r.topRight.Y
		}
	}

	return NewRectangle(NewPoint(minX, minY), NewPoint(maxX, maxY))
}
