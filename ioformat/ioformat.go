package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arborfield/polyforest/geo"
)

// Parse reads the textual polygon format from r: one "<id> <x> <y>"
// line per vertex. Vertices are grouped into polygons by id, and
// polygons are returned in the order their id first appeared in r.
func Parse(r io.Reader) ([]geo.Polygon, error) {
	scanner := bufio.NewScanner(r)

	order := make([]string, 0)
	groups := make(map[string][]geo.Point)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d", ErrMalformedLine, lineNo)
		}

		id := fields[0]
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedField, lineNo, err)
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedField, lineNo, err)
		}

		if _, seen := groups[id]; !seen {
			order = append(order, id)
		}
		groups[id] = append(groups[id], geo.NewPoint(x, y))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	polys := make([]geo.Polygon, 0, len(order))
	for _, id := range order {
		p, err := geo.NewPolygon(groups[id])
		if err != nil {
			return nil, fmt.Errorf("ioformat: polygon %q: %w", id, err)
		}
		polys = append(polys, p)
	}

	return polys, nil
}

// Write serializes polys to w in the same textual format Parse reads,
// using each polygon's position in polys as its id.
func Write(w io.Writer, polys []geo.Polygon) error {
	for i, p := range polys {
		for _, pt := range p.Points() {
			if _, err := fmt.Fprintf(w, "%d %g %g\n", i, pt.X, pt.Y); err != nil {
				return err
			}
		}
	}

	return nil
}
