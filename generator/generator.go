package generator

import (
	"math"
	"sort"

	"github.com/arborfield/polyforest/geo"
)

// Generate draws n pairwise non-intersecting simple polygons, applying
// opts to the default configuration (up to 6 corners, a 1000-unit
// square region, radius up to 50) before drawing. Every returned
// polygon fits strictly inside [0, dimension)². It returns
// ErrNegativeCount for a negative n.
func Generate(n int, opts ...Option) ([]geo.Polygon, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	result := make([]geo.Polygon, 0, n)
	for len(result) < n {
		candidate := drawCandidate(cfg.rng, cfg.cornerCountMax, cfg.dimension, cfg.radiusMax)
		if !intersectsAny(candidate, result) {
			result = append(result, candidate)
		}
	}

	return result, nil
}

// drawCandidate draws one polygon: a corner count k uniform in [3,
// cornerCountMax], a radius r uniform in [1, radiusMax] shared by
// every vertex, and a center far enough from the domain edge that a
// vertex at distance r from it cannot leave [0, dimension]². k and r
// are fixed for the candidate; only the angles and per-vertex radii
// are redrawn on retry.
func drawCandidate(rng randSource, cornerCountMax int, dimension, radiusMax float64) geo.Polygon {
	k := 3 + rng.Intn(cornerCountMax-2)
	r := 1 + rng.Float64()*(radiusMax-1)
	center := geo.NewPoint(
		r+rng.Float64()*(dimension-2*r),
		r+rng.Float64()*(dimension-2*r),
	)

	for {
		if poly, ok := drawStarShaped(rng, center, k, r); ok {
			return poly
		}
	}
}

// drawStarShaped draws one candidate ring of k vertices around center:
// each vertex sits at a random angle (sorted ascending) and a random
// distance in [0, r] from center. The ring is rejected (ok=false)
// whenever NewPolygon rejects it: two vertices closer than Epsilon, or
// two non-adjacent edges intersecting, which sorted angles alone do not
// rule out when one angular gap exceeds π.
func drawStarShaped(rng randSource, center geo.Point, k int, r float64) (geo.Polygon, bool) {
	angles := make([]float64, k)
	for i := range angles {
		angles[i] = rng.Float64() * 2 * math.Pi
	}
	sort.Float64s(angles)

	points := make([]geo.Point, k)
	for i, theta := range angles {
		d := rng.Float64() * r
		points[i] = geo.NewPoint(
			center.X+d*math.Cos(theta),
			center.Y+d*math.Sin(theta),
		)
	}

	poly, err := geo.NewPolygon(points)
	return poly, err == nil
}

func intersectsAny(p geo.Polygon, existing []geo.Polygon) bool {
	for _, e := range existing {
		if p.Intersects(e) {
			return true
		}
	}

	return false
}

// randSource is the subset of *rand.Rand this package draws from,
// kept narrow so tests can stub it.
type randSource interface {
	Float64() float64
	Intn(n int) int
}
