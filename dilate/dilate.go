package dilate

import "github.com/rcarve/carveplan/rimage"

// Dilate computes the disc dilation of src by diameter D pixels into dst:
// every pixel of dst whose squared Euclidean distance to the nearest
// non-zero pixel of src is <= floor(D/2)^2 is written 255, all others 0.
//
// D < 2 is a copy of src into dst. D > min(w,h) is a precondition
// violation (ErrToolTooLarge). src and dst must have identical dimensions
// and must not alias the same backing storage.
func Dilate(dst, src rimage.Image[uint8, rimage.Binary], diameter int) error {
	if src.Width != dst.Width || src.Height != dst.Height {
		return ErrDimensionMismatch
	}
	if len(src.Data) > 0 && len(dst.Data) > 0 && &src.Data[0] == &dst.Data[0] {
		return ErrSameBuffer
	}
	if diameter > min(src.Width, src.Height) {
		return ErrToolTooLarge
	}
	if diameter < 2 {
		return rimage.CopyRows(dst, src, 0, src.Height)
	}

	radius := diameter / 2
	maxDim := max(src.Width, src.Height)
	if useWindowMethod(maxDim, diameter) {
		windowDilate(dst, src, radius)
	} else {
		edtDilate(dst, src, radius*radius)
	}
	return nil
}
