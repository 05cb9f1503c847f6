package algorithms

import "errors"

// ErrUnknownAlgorithm indicates a lookup for an id the registry does not hold.
var ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")
