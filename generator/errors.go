package generator

import "errors"

// ErrNegativeCount is returned by Generate when asked for a negative
// number of polygons.
var ErrNegativeCount = errors.New("generator: count must be non-negative")
