package ioformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborfield/polyforest/geo"
	"github.com/arborfield/polyforest/ioformat"
)

func TestParse_GroupsByFirstOccurrence(t *testing.T) {
	input := strings.Join([]string{
		"1 0 0",
		"0 10 10",
		"1 5 0",
		"0 15 10",
		"1 5 5",
		"0 10 15",
	}, "\n")

	polys, err := ioformat.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, polys, 2)

	// id "1" appeared first, so it is the first polygon returned.
	assert.Equal(t, []geo.Point{
		geo.NewPoint(0, 0), geo.NewPoint(5, 0), geo.NewPoint(5, 5),
	}, polys[0].Points())
	assert.Equal(t, []geo.Point{
		geo.NewPoint(10, 10), geo.NewPoint(15, 10), geo.NewPoint(10, 15),
	}, polys[1].Points())
}

func TestParse_SkipsBlankLines(t *testing.T) {
	input := "0 0 0\n\n0 10 0\n0 5 10\n"
	polys, err := ioformat.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, polys, 1)
	assert.Len(t, polys[0].Points(), 3)
}

func TestParse_MalformedLine(t *testing.T) {
	_, err := ioformat.Parse(strings.NewReader("0 0\n"))
	assert.ErrorIs(t, err, ioformat.ErrMalformedLine)
}

func TestParse_MalformedField(t *testing.T) {
	_, err := ioformat.Parse(strings.NewReader("0 x 0\n"))
	assert.ErrorIs(t, err, ioformat.ErrMalformedField)
}

func TestParse_InvalidPolygon(t *testing.T) {
	_, err := ioformat.Parse(strings.NewReader("0 0 0\n0 10 0\n"))
	assert.ErrorIs(t, err, geo.ErrTooFewPoints)
}

func TestWrite_RoundTrips(t *testing.T) {
	square := geo.NewSquarePolygon(geo.NewPoint(0, 0), 10)
	var buf strings.Builder
	require.NoError(t, ioformat.Write(&buf, []geo.Polygon{square}))

	polys, err := ioformat.Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, polys, 1)
	assert.Equal(t, square.Points(), polys[0].Points())
}
