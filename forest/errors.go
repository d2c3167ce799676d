package forest

import "errors"

// ErrUnknownAlgorithm is returned by ParseAlgorithm for any flag value
// other than "naive", "frames" or "dac".
var ErrUnknownAlgorithm = errors.New("forest: unknown algorithm")
