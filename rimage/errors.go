package rimage

import "errors"

// Sentinel errors for rimage operations.
var (
	// ErrInvalidDims indicates a non-positive width or height.
	ErrInvalidDims = errors.New("rimage: width and height must be positive")

	// ErrInvalidStride indicates a stride smaller than width*channels.
	ErrInvalidStride = errors.New("rimage: stride must be >= width*channels")

	// ErrOutOfBounds indicates a checked access outside image bounds.
	ErrOutOfBounds = errors.New("rimage: coordinate out of bounds")

	// ErrDimensionMismatch indicates two images paired in one operation
	// disagree on width, height, or channel count.
	ErrDimensionMismatch = errors.New("rimage: dimension mismatch between images")
)
