package dilate

import "errors"

// Sentinel errors for dilate operations.
var (
	// ErrDimensionMismatch indicates src and dst do not share dimensions.
	ErrDimensionMismatch = errors.New("dilate: src and dst dimensions must match")

	// ErrSameBuffer indicates src and dst alias the same backing storage;
	// Dilate requires distinct buffers.
	ErrSameBuffer = errors.New("dilate: src and dst must be distinct buffers")

	// ErrToolTooLarge indicates D > min(w,h), a precondition violation.
	ErrToolTooLarge = errors.New("dilate: diameter exceeds the smaller image dimension")
)
