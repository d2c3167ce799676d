package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborfield/polyforest/geo"
)

func TestVector_Norm(t *testing.T) {
	v := geo.NewVector(3, 4)
	assert.InDelta(t, 5.0, v.Norm(), geo.Epsilon)
	assert.InDelta(t, 25.0, v.SquaredNorm(), geo.Epsilon)
}

func TestVector_Unit(t *testing.T) {
	v := geo.NewVector(0, 10)
	u, err := v.Unit()
	require.NoError(t, err)
	assert.True(t, u.Equal(geo.NewVector(0, 1)))
}

func TestVector_Unit_ZeroVector(t *testing.T) {
	_, err := geo.NewVector(0, 0).Unit()
	assert.ErrorIs(t, err, geo.ErrZeroNorm)
}

func TestVector_Det(t *testing.T) {
	a := geo.NewVector(1, 0)
	b := geo.NewVector(0, 1)
	assert.InDelta(t, 1.0, a.Det(b), geo.Epsilon)
	assert.InDelta(t, -1.0, b.Det(a), geo.Epsilon)
}

func TestVector_IsCollinearWith(t *testing.T) {
	a := geo.NewVector(2, 4)
	b := geo.NewVector(1, 2)
	assert.True(t, a.IsCollinearWith(b))

	c := geo.NewVector(1, 1)
	assert.False(t, a.IsCollinearWith(c))
}

func TestVector_IsOrthogonalTo(t *testing.T) {
	a := geo.NewVector(1, 0)
	b := geo.NewVector(0, 1)
	assert.True(t, a.IsOrthogonalTo(b))
	assert.False(t, a.IsOrthogonalTo(a))
}

func TestVector_HorizontalVertical(t *testing.T) {
	assert.True(t, geo.NewVector(5, 0).IsHorizontal())
	assert.False(t, geo.NewVector(5, 1).IsHorizontal())
	assert.True(t, geo.NewVector(0, 5).IsVertical())
	assert.False(t, geo.NewVector(1, 5).IsVertical())
}
