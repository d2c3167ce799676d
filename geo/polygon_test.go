package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborfield/polyforest/geo"
)

func square(bottomLeftX, bottomLeftY, side geo.Unit) geo.Polygon {
	return geo.NewSquarePolygon(geo.NewPoint(bottomLeftX, bottomLeftY), side)
}

func TestNewPolygon_TooFewPoints(t *testing.T) {
	_, err := geo.NewPolygon([]geo.Point{geo.NewPoint(0, 0), geo.NewPoint(1, 0)})
	assert.ErrorIs(t, err, geo.ErrTooFewPoints)
}

func TestNewPolygon_DuplicatePoint(t *testing.T) {
	pts := []geo.Point{geo.NewPoint(0, 0), geo.NewPoint(1, 0), geo.NewPoint(0, 0)}
	_, err := geo.NewPolygon(pts)
	assert.ErrorIs(t, err, geo.ErrDuplicatePoint)
}

func TestNewPolygon_SelfIntersecting(t *testing.T) {
	// bowtie quadrilateral: edges 0-1 and 2-3 cross.
	pts := []geo.Point{
		geo.NewPoint(0, 0),
		geo.NewPoint(10, 10),
		geo.NewPoint(10, 0),
		geo.NewPoint(0, 10),
	}
	_, err := geo.NewPolygon(pts)
	assert.ErrorIs(t, err, geo.ErrSelfIntersectingPolygon)
}

func TestNewPolygon_ValidSquare(t *testing.T) {
	_, err := geo.NewPolygon([]geo.Point{
		geo.NewPoint(0, 0), geo.NewPoint(10, 0), geo.NewPoint(10, 10), geo.NewPoint(0, 10),
	})
	require.NoError(t, err)
}

func TestPolygon_Area(t *testing.T) {
	s := square(0, 0, 10)
	assert.InDelta(t, 100.0, s.Area(), geo.Epsilon)
}

func TestPolygon_IsClockwise_Revert(t *testing.T) {
	ccw := square(0, 0, 10)
	assert.False(t, ccw.IsClockwise())

	cw := ccw.Revert()
	assert.True(t, cw.IsClockwise())
	assert.InDelta(t, ccw.Area(), cw.Area(), geo.Epsilon)
}

func TestPolygon_Clockwise(t *testing.T) {
	ccw := square(0, 0, 10)
	cw := ccw.Clockwise()
	assert.True(t, cw.IsClockwise())
	assert.True(t, cw.Clockwise().IsClockwise())
}

func TestPolygon_Frame(t *testing.T) {
	s := square(2, 3, 5)
	f := s.Frame()
	assert.True(t, f.BottomLeft().Equal(geo.NewPoint(2, 3)))
	assert.True(t, f.TopRight().Equal(geo.NewPoint(7, 8)))
}

func TestPolygon_Contains_Point(t *testing.T) {
	s := square(0, 0, 10)
	assert.True(t, s.Contains(geo.NewPoint(5, 5)))
	assert.False(t, s.Contains(geo.NewPoint(15, 5)))
	assert.False(t, s.Contains(geo.NewPoint(-1, 5)))
}

func TestPolygon_ContainsPolygon(t *testing.T) {
	outer := square(0, 0, 100)
	inner := square(10, 10, 10)
	assert.True(t, outer.ContainsPolygon(inner))
	assert.False(t, inner.ContainsPolygon(outer))
}

func TestPolygon_Intersects(t *testing.T) {
	a := square(0, 0, 10)
	b := square(5, 5, 10)
	assert.True(t, a.Intersects(b))

	c := square(100, 100, 10)
	assert.False(t, a.Intersects(c))
}
