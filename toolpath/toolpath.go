package toolpath

import (
	"github.com/rcarve/carveplan/band"
	"github.com/rcarve/carveplan/dilate"
	"github.com/rcarve/carveplan/label"
	"github.com/rcarve/carveplan/regiontree"
	"github.com/rcarve/carveplan/rimage"
)

// Generate implements spec.md §4.7: a depth-first pre-order walk of root,
// emitting one or more raster paths per Cut leaf. plyImage and
// regionImage must share dimensions. toolDia and step are in pixels.
//
// Generate preallocates its two working masks and its dilation output
// buffer once and reuses them across every leaf, per the single-threaded
// buffer-reuse model. Inside the per-leaf loop, the only other allocations
// are the returned paths and the scratch space each dilate.Dilate call
// makes for itself.
func Generate(
	root regiontree.Root,
	bands []band.CutBand,
	plyImage rimage.Image[band.PlyIndex, rimage.PlyTag],
	regionImage rimage.Image[label.RegionIndex, rimage.RegionTag],
	infos []label.LabelInfo,
	toolDia, step int,
) ([]Path, error) {
	if plyImage.Width != regionImage.Width || plyImage.Height != regionImage.Height {
		return nil, ErrDimensionMismatch
	}
	w, h := regionImage.Width, regionImage.Height

	regionMask, err := rimage.New[uint8, rimage.Binary](w, h, 1)
	if err != nil {
		return nil, err
	}
	aboveMask, err := rimage.New[uint8, rimage.Binary](w, h, 1)
	if err != nil {
		return nil, err
	}
	dilated, err := rimage.New[uint8, rimage.Binary](w, h, 1)
	if err != nil {
		return nil, err
	}

	var paths []Path
	var walkErr error
	regiontree.Walk(root, func(n regiontree.Node) {
		if walkErr != nil || n.Kind != regiontree.Cut {
			return
		}
		leaf, err := cutLeaf(n, bands, plyImage, infos, toolDia, step, regionMask, aboveMask, dilated)
		if err != nil {
			walkErr = err
			return
		}
		paths = append(paths, leaf...)
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return paths, nil
}

// cutLeaf runs steps 1-6 of §4.7 for a single Cut node, leaving the three
// shared buffers ready for the next leaf (each is fully overwritten before
// being read, so no explicit reset between leaves is needed beyond the
// Fill calls below).
func cutLeaf(
	n regiontree.Node,
	bands []band.CutBand,
	plyImage rimage.Image[band.PlyIndex, rimage.PlyTag],
	infos []label.LabelInfo,
	toolDia, step int,
	regionMask, aboveMask, dilated rimage.Image[uint8, rimage.Binary],
) ([]Path, error) {
	plane := bands[n.BandI].CutPlanes[n.CutPlaneI]
	z := plane.TopThou
	info := infos[n.RegionI]

	regionMask.Fill(0)
	for _, off := range info.PixelIZ {
		regionMask.Data[off] = 255
	}

	aboveMask.Fill(0)
	currPlyI := plyImage.AtUnchecked(info.Start.X, info.Start.Y, 0)
	roi := info.ROI.Expand(toolDia).Clamp(plyImage.Width, plyImage.Height)
	for y := roi.T; y < roi.B; y++ {
		for x := roi.L; x < roi.R; x++ {
			if plyImage.AtUnchecked(x, y, 0) > currPlyI {
				aboveMask.SetUnchecked(x, y, 0, 255)
			}
		}
	}

	if err := dilate.Dilate(dilated, regionMask, toolDia); err != nil {
		return nil, err
	}
	copy(regionMask.Data, dilated.Data) // regionMask now holds M_region_dil

	if err := dilate.Dilate(dilated, aboveMask, toolDia); err != nil {
		return nil, err
	}
	// Subtract in place: regionMask becomes M_cut = M_region_dil ∧ ¬M_above_dil.
	for i, v := range regionMask.Data {
		if v != 0 && dilated.Data[i] == 0 {
			regionMask.Data[i] = 255
		} else {
			regionMask.Data[i] = 0
		}
	}

	return Raster(regionMask, roi, toolDia, step, z), nil
}

// Raster implements the scanline rule of §4.7: cutMask is walked row by
// row within roi (shrunk by ⌊D/2⌋ on every side so the tool centre never
// leaves the image), stepping rows by s, emitting one Path per maximal
// contiguous non-zero run.
func Raster(cutMask rimage.Image[uint8, rimage.Binary], roi rimage.ROI, toolDia, step int, z band.Thou) []Path {
	radius := toolDia / 2
	clamped := rimage.ROI{L: roi.L + radius, T: roi.T + radius, R: roi.R - radius, B: roi.B - radius}
	if clamped.Empty() {
		return nil
	}
	if step < 1 {
		step = 1
	}

	var paths []Path
	for y := clamped.T; y < clamped.B; y += step {
		x := clamped.L
		for x < clamped.R {
			if cutMask.AtUnchecked(x, y, 0) == 0 {
				x++
				continue
			}
			sx := x
			for x < clamped.R && cutMask.AtUnchecked(x, y, 0) != 0 {
				x++
			}
			ex := x - 1
			paths = append(paths, Path{
				Points:     []Point{{X: sx, Y: y, Z: z}, {X: ex, Y: y, Z: z}},
				ToolDiaPix: toolDia,
			})
		}
	}
	return paths
}
