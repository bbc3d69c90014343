package rimage

// New allocates a zero-initialised, densely packed Image of the given
// width, height, and channel count (Stride == Width*NCh).
func New[T Numeric, Tag any](width, height, nch int) (Image[T, Tag], error) {
	if width <= 0 || height <= 0 {
		return Image[T, Tag]{}, ErrInvalidDims
	}
	if nch <= 0 {
		nch = 1
	}
	stride := width * nch

	return Image[T, Tag]{
		Width: width, Height: height, Stride: stride, NCh: nch,
		Data: make([]T, height*stride),
	}, nil
}

// NewStrided allocates a zero-initialised Image with an explicit row
// stride, e.g. to embed the image inside a larger atlas buffer.
func NewStrided[T Numeric, Tag any](width, height, stride, nch int) (Image[T, Tag], error) {
	if width <= 0 || height <= 0 {
		return Image[T, Tag]{}, ErrInvalidDims
	}
	if nch <= 0 {
		nch = 1
	}
	if stride < width*nch {
		return Image[T, Tag]{}, ErrInvalidStride
	}

	return Image[T, Tag]{
		Width: width, Height: height, Stride: stride, NCh: nch,
		Data: make([]T, height*stride),
	}, nil
}

// index returns the flat offset of sample (x, y, ch). Callers in
// AtUnchecked/SetUnchecked are expected to have already validated bounds.
func (im Image[T, Tag]) index(x, y, ch int) int {
	return y*im.Stride + x*im.NCh + ch
}

// InBounds reports whether (x, y) lies within the image.
func (im Image[T, Tag]) InBounds(x, y int) bool {
	return x >= 0 && x < im.Width && y >= 0 && y < im.Height
}

// At performs a bounds-checked read of channel ch at (x, y).
func (im Image[T, Tag]) At(x, y, ch int) (T, error) {
	if !im.InBounds(x, y) || ch < 0 || ch >= im.NCh {
		var zero T
		return zero, ErrOutOfBounds
	}
	return im.Data[im.index(x, y, ch)], nil
}

// Set performs a bounds-checked write of channel ch at (x, y).
func (im Image[T, Tag]) Set(x, y, ch int, v T) error {
	if !im.InBounds(x, y) || ch < 0 || ch >= im.NCh {
		return ErrOutOfBounds
	}
	im.Data[im.index(x, y, ch)] = v
	return nil
}

// AtUnchecked reads channel ch at (x, y) with no bounds check, for use in
// the hot inner loops of dilation, labelling, and rasterization.
func (im Image[T, Tag]) AtUnchecked(x, y, ch int) T {
	return im.Data[im.index(x, y, ch)]
}

// SetUnchecked writes channel ch at (x, y) with no bounds check.
func (im Image[T, Tag]) SetUnchecked(x, y, ch int, v T) {
	im.Data[im.index(x, y, ch)] = v
}

// CopyRows copies rows [y0, y1) from src into the same row range of dst.
// Both images must share Width, Height, and NCh.
func CopyRows[T Numeric, Tag any](dst, src Image[T, Tag], y0, y1 int) error {
	if dst.Width != src.Width || dst.Height != src.Height || dst.NCh != src.NCh {
		return ErrDimensionMismatch
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 > src.Height {
		y1 = src.Height
	}
	rowLen := src.Width * src.NCh
	for y := y0; y < y1; y++ {
		so := y * src.Stride
		do := y * dst.Stride
		copy(dst.Data[do:do+rowLen], src.Data[so:so+rowLen])
	}
	return nil
}

// Map applies f to every active sample of im, in place, row by row.
func (im Image[T, Tag]) Map(f func(T) T) {
	rowLen := im.Width * im.NCh
	for y := 0; y < im.Height; y++ {
		row := im.Data[y*im.Stride : y*im.Stride+rowLen]
		for i, v := range row {
			row[i] = f(v)
		}
	}
}

// Invert flips a binary mask in place: zero samples become 255, non-zero
// samples become 0. Invoking it twice restores the original mask.
func Invert[Tag any](im Image[uint8, Tag]) {
	im.Map(func(v uint8) uint8 {
		if v == 0 {
			return 255
		}
		return 0
	})
}

// Fill sets every active sample of im to v.
func (im Image[T, Tag]) Fill(v T) {
	im.Map(func(T) T { return v })
}

// Retag reinterprets img under a new phantom Tag. The backing slice is
// shared, never copied: retagging is purely a compile-time relabelling.
func Retag[NewTag any, T Numeric, OldTag any](img Image[T, OldTag]) Image[T, NewTag] {
	return Image[T, NewTag]{
		Width: img.Width, Height: img.Height, Stride: img.Stride, NCh: img.NCh,
		Data: img.Data,
	}
}
