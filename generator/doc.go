// Package generator produces sets of random, pairwise non-intersecting
// simple polygons for feeding into the forest package or the CLI's
// process/show subcommands.
//
// Each candidate polygon is drawn star-shaped around a random center:
// corners random angles are sampled and sorted ascending, then each
// vertex gets a random radius from the center along its angle. The
// angles and radii are redrawn around the same center whenever the
// result is not a valid simple polygon (coincident vertices or
// crossing non-adjacent edges). Candidates that intersect any polygon already accepted
// are discarded and redrawn at a fresh random center, so the final set
// is guaranteed pairwise disjoint (never mind nested — containment is
// fine, crossing is not).
//
// Determinism follows the teacher's builder/options.go idiom exactly:
// WithSeed creates a fresh seeded source and WithRand accepts a
// caller-owned one. Option constructors that take an argument with
// invalid values (WithRand on nil, WithCorners, WithDimension,
// WithRadius) validate and panic, while the generator itself never
// does.
package generator
