package toolpath

import "errors"

// ErrDimensionMismatch indicates the ply image and region image passed to
// Generate do not share dimensions.
var ErrDimensionMismatch = errors.New("toolpath: ply image and region image dimensions mismatch")
