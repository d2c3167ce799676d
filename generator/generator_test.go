package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborfield/polyforest/generator"
)

func TestGenerate_NegativeCount(t *testing.T) {
	_, err := generator.Generate(-1)
	assert.ErrorIs(t, err, generator.ErrNegativeCount)
}

func TestGenerate_ZeroCount(t *testing.T) {
	polys, err := generator.Generate(0)
	require.NoError(t, err)
	assert.Empty(t, polys)
}

// TestGenerate_Bounds covers S6: for (c=6, dim=1000, r=50, n=50), every
// output polygon lies strictly inside [0,1000]² and has between 3 and
// 6 vertices.
func TestGenerate_Bounds(t *testing.T) {
	const (
		n         = 50
		dimension = 1000.0
	)
	polys, err := generator.Generate(n,
		generator.WithCorners(6),
		generator.WithDimension(dimension),
		generator.WithRadius(50),
		generator.WithSeed(42),
	)
	require.NoError(t, err)
	require.Len(t, polys, n)

	for _, p := range polys {
		assert.GreaterOrEqual(t, len(p.Points()), 3)
		assert.LessOrEqual(t, len(p.Points()), 6)

		for _, pt := range p.Points() {
			assert.Greater(t, pt.X, 0.0)
			assert.Less(t, pt.X, dimension)
			assert.Greater(t, pt.Y, 0.0)
			assert.Less(t, pt.Y, dimension)
		}
	}
}

func TestGenerate_PairwiseNonIntersecting(t *testing.T) {
	polys, err := generator.Generate(30,
		generator.WithCorners(5),
		generator.WithDimension(500),
		generator.WithRadius(20),
		generator.WithSeed(7),
	)
	require.NoError(t, err)

	for i := range polys {
		for j := i + 1; j < len(polys); j++ {
			assert.False(t, polys[i].Intersects(polys[j]), "polygons %d and %d must not intersect", i, j)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := generator.Generate(10, generator.WithSeed(99))
	require.NoError(t, err)
	b, err := generator.Generate(10, generator.WithSeed(99))
	require.NoError(t, err)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Points(), b[i].Points())
	}
}

func TestWithCorners_PanicsBelowThree(t *testing.T) {
	assert.Panics(t, func() { generator.WithCorners(2) })
}

func TestWithDimension_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { generator.WithDimension(0) })
}

func TestWithRadius_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { generator.WithRadius(-1) })
}

func TestWithRand_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { generator.WithRand(nil) })
}
