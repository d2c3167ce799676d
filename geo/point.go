package geo

// Point is a location in the plane.
type Point struct {
	X, Y Unit
}

// NewPoint builds a Point from its coordinates.
func NewPoint(x, y Unit) Point {
	return Point{X: x, Y: y}
}

// Equal reports whether p and other are the same point: their
// Euclidean distance is strictly less than Epsilon.
func (p Point) Equal(other Point) bool {
	return p.Sub(other).SquaredNorm() < Epsilon*Epsilon
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Vector {
	return Vector{Dx: p.X - other.X, Dy: p.Y - other.Y}
}

// Add translates p by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.Dx, Y: p.Y + v.Dy}
}
