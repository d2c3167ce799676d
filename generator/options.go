package generator

import "math/rand"

// Option customizes a generator run by mutating a config before any
// polygon is drawn.
//
// Contract: option constructors validate and panic on a meaningless
// argument (a non-positive dimension, fewer than 3 corners, a nil
// RNG); Generate itself never panics on account of configuration, only
// on the generator's own internal invariants.
type Option func(*config)

type config struct {
	cornerCountMax int
	dimension      float64
	radiusMax      float64
	rng            *rand.Rand
}

func defaultConfig() config {
	return config{
		cornerCountMax: 6,
		dimension:      1000,
		radiusMax:      50,
		rng:            rand.New(rand.NewSource(1)),
	}
}

// WithCorners sets the maximum number of vertices a generated polygon
// can have; each polygon independently draws its own corner count
// from [3, corners]. Panics if corners is fewer than 3.
func WithCorners(corners int) Option {
	if corners < 3 {
		panic("generator: WithCorners requires at least 3 corners")
	}

	return func(c *config) {
		c.cornerCountMax = corners
	}
}

// WithDimension sets the side length of the square region [0,
// dimension)² every generated polygon fits strictly inside. Panics if
// dimension is not positive.
func WithDimension(dimension float64) Option {
	if dimension <= 0 {
		panic("generator: WithDimension requires a positive dimension")
	}

	return func(c *config) {
		c.dimension = dimension
	}
}

// WithRadius sets the maximum per-polygon radius; each polygon
// independently draws its own radius from [1, radius], shared by all
// of its vertices. Panics if radius is not positive.
func WithRadius(radius float64) Option {
	if radius <= 0 {
		panic("generator: WithRadius requires a positive radius")
	}

	return func(c *config) {
		c.radiusMax = radius
	}
}

// WithSeed creates a new seeded RNG for the generator to draw from.
// Use this for reproducible generation.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG, letting the caller own the seed
// policy. Panics on a nil source.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}
