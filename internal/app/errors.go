package app

import "errors"

// Sentinel kinds for service errors.
var (
	ErrBoardFull      = errors.New("board is full")
	ErrAmbiguousOrder = errors.New("order is not a single relocation")
)
