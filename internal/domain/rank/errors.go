package rank

import "errors"

// Sentinel kinds for rank errors.
var (
	ErrInvalidIndex = errors.New("index out of range")
	ErrInvariant    = errors.New("rank invariant violated")
)
