package geo

import "errors"

// ErrZeroNorm is returned by Vector.Unit when called on the zero vector,
// which has no defined direction.
var ErrZeroNorm = errors.New("geo: cannot normalize a zero-length vector")
