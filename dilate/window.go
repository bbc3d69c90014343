package dilate

import "github.com/rcarve/carveplan/rimage"

type offset struct {
	dx, dy int
	lin    int // dy*stride + dx at src's stride; used only to index src.Data
}

// discOffsets lists every (dx, dy) with dx^2+dy^2 <= radius^2, in raster
// order (dy outer, dx inner). windowDilate stops at the first hit, so
// probe order only affects how many offsets are checked before a hit, not
// the result.
func discOffsets(radius, stride int) []offset {
	r2 := radius * radius
	offs := make([]offset, 0, 4*radius*radius)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				offs = append(offs, offset{dx: dx, dy: dy, lin: dy*stride + dx})
			}
		}
	}
	return offs
}

// windowDilate implements the window method: for each output pixel, if the
// source pixel itself is set the answer is immediate; otherwise scan the
// precomputed disc offsets and stop at the first non-zero hit. Interior
// pixels (at least radius pixels from every edge, so the whole disc lies
// inside the image) use unchecked linear indexing at src's stride; edge
// pixels clip each offset to bounds.
func windowDilate(dst, src rimage.Image[uint8, rimage.Binary], radius int) {
	offs := discOffsets(radius, src.Stride)
	w, h := src.Width, src.Height

	for y := 0; y < h; y++ {
		interiorRow := y >= radius && y < h-radius
		for x := 0; x < w; x++ {
			if src.AtUnchecked(x, y, 0) != 0 {
				dst.SetUnchecked(x, y, 0, 255)
				continue
			}
			interior := interiorRow && x >= radius && x < w-radius
			if interior {
				base := y*src.Stride + x
				hit := uint8(0)
				for _, o := range offs {
					if src.Data[base+o.lin] != 0 {
						hit = 255
						break
					}
				}
				dst.SetUnchecked(x, y, 0, hit)
				continue
			}
			hit := uint8(0)
			for _, o := range offs {
				nx, ny := x+o.dx, y+o.dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				if src.AtUnchecked(nx, ny, 0) != 0 {
					hit = 255
					break
				}
			}
			dst.SetUnchecked(x, y, 0, hit)
		}
	}
}
