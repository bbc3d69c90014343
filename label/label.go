package label

import "github.com/rcarve/carveplan/rimage"

// neighborOffsets lists the 4-connected deltas in right, left, down, up
// order, matching the scan order spec.md's adjacency pass relies on.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Label performs 4-connected flood-fill labelling over src, whose zero
// sample is background. It returns a label image (same dimensions as src,
// RegionTag) and a sentinel-first []LabelInfo (index 0 is the empty
// background entry, indices 1..N are the discovered components in
// row-major discovery order).
func Label[T rimage.Numeric, SrcTag any](src rimage.Image[T, SrcTag]) (rimage.Image[RegionIndex, rimage.RegionTag], []LabelInfo, error) {
	out, err := rimage.New[RegionIndex, rimage.RegionTag](src.Width, src.Height, 1)
	if err != nil {
		return out, nil, err
	}

	w, h := src.Width, src.Height
	visited := make([]bool, w*h)
	infos := make([]LabelInfo, 1) // index 0: sentinel

	stack := make([]Point, 0, 64)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if visited[idx] {
				continue
			}
			seedVal := src.AtUnchecked(x, y, 0)
			if seedVal == 0 {
				continue // background
			}

			if len(infos) > maxRegionIndex {
				return out, nil, ErrLabelOverflow
			}
			k := RegionIndex(len(infos))

			visited[idx] = true
			stack = stack[:0]
			stack = append(stack, Point{X: x, Y: y})

			info := LabelInfo{Start: Point{X: x, Y: y}, ROI: rimage.ROI{L: x, T: y, R: x + 1, B: y + 1}}

			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				pIdx := p.Y*w + p.X
				out.SetUnchecked(p.X, p.Y, 0, k)
				info.PixelIZ = append(info.PixelIZ, pIdx)
				info.Size++
				if p.X < info.ROI.L {
					info.ROI.L = p.X
				}
				if p.X+1 > info.ROI.R {
					info.ROI.R = p.X + 1
				}
				if p.Y < info.ROI.T {
					info.ROI.T = p.Y
				}
				if p.Y+1 > info.ROI.B {
					info.ROI.B = p.Y + 1
				}

				for _, d := range neighborOffsets {
					nx, ny := p.X+d[0], p.Y+d[1]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					nIdx := ny*w + nx
					if visited[nIdx] {
						continue
					}
					if src.AtUnchecked(nx, ny, 0) != seedVal {
						continue
					}
					visited[nIdx] = true
					stack = append(stack, Point{X: nx, Y: ny})
				}
			}

			infos = append(infos, info)
		}
	}

	return out, infos, nil
}
