package rimage

import "golang.org/x/exp/constraints"

// Numeric bounds the sample type an Image may hold. It covers every pixel
// representation the planner needs: uint8 masks, uint16 label/ply indices,
// and wider integer types a caller might promote into.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Binary tags an Image whose samples are 0 or non-zero (a mask).
type Binary struct{}

// Grayscale tags an Image of single-channel intensity samples.
type Grayscale struct{}

// PlyTag tags an Image whose samples are ply indices.
type PlyTag struct{}

// RegionTag tags an Image whose samples are region (label) indices.
type RegionTag struct{}

// Image is a tightly-strided 2-D array of T, with an optional phantom Tag
// distinguishing what the samples mean without any runtime cost.
//
// Invariant: Stride >= Width*NCh. Data has length Height*Stride (the last
// Stride-Width*NCh elements of each row beyond the active width are padding
// and are never read or written by Image's own methods).
type Image[T Numeric, Tag any] struct {
	Width, Height, Stride, NCh int
	Data                       []T
}

// ROI is a half-open rectangle; Right and Bottom are exclusive.
type ROI struct {
	L, T, R, B int
}

// Dx returns the ROI's width.
func (r ROI) Dx() int { return r.R - r.L }

// Dy returns the ROI's height.
func (r ROI) Dy() int { return r.B - r.T }

// Empty reports whether the ROI covers zero area.
func (r ROI) Empty() bool { return r.Dx() <= 0 || r.Dy() <= 0 }

// Expand grows the ROI by n pixels on all four sides.
func (r ROI) Expand(n int) ROI {
	return ROI{L: r.L - n, T: r.T - n, R: r.R + n, B: r.B + n}
}

// Clamp intersects the ROI with the image rectangle [0,0)-(w,h).
func (r ROI) Clamp(w, h int) ROI {
	return r.Intersect(ROI{L: 0, T: 0, R: w, B: h})
}

// Intersect returns the overlap of r and o; the result may be Empty.
func (r ROI) Intersect(o ROI) ROI {
	out := ROI{
		L: max(r.L, o.L),
		T: max(r.T, o.T),
		R: min(r.R, o.R),
		B: min(r.B, o.B),
	}
	if out.Empty() {
		return ROI{}
	}
	return out
}
