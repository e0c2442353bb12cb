package buffer

import "errors"

// Sentinel errors for buffer operations.
var (
	// ErrInvalidRange is returned when an edit's start exceeds its end.
	ErrInvalidRange = errors.New("invalid range: start exceeds end")

	// ErrRangeOutOfBounds is returned when an edit range exceeds the buffer.
	ErrRangeOutOfBounds = errors.New("range out of bounds")
)
