package band

import (
	"sort"

	"github.com/rcarve/carveplan/label"
	"github.com/rcarve/carveplan/rimage"
)

// BuildCutBands implements spec.md §4.5. plyDescs must be sorted so index
// 0 is the hidden, zero-elevation dummy ply and indices 1..N have
// non-decreasing TopThou. plyImage's samples are PlyIndex values (index
// into plyDescs) rasterised at pixel resolution; infos is the labeller's
// output over that same raster.
//
// A ply whose TopThou falls into no requested band is silently skipped
// (spec.md §9 Open Question, retained and flagged, not treated as a bug).
// A region whose representative pixel holds a PlyIndex that matches no
// cut plane is silently skipped (spec.md §7 "Missing lookup").
func BuildCutBands(
	cutPass string,
	bandDescs []BandDesc,
	plyDescs []PlyDesc,
	plyImage rimage.Image[PlyIndex, rimage.PlyTag],
	infos []label.LabelInfo,
) ([]CutBand, error) {
	if len(plyDescs) == 0 || plyDescs[0].TopThou != 0 || !plyDescs[0].Hidden {
		return nil, ErrMissingDummyPly
	}

	var bands []CutBand
	for _, bd := range bandDescs {
		if bd.CutPass != cutPass {
			continue
		}
		bands = append(bands, CutBand{Desc: bd, TopThou: bd.TopThou, BotThou: bd.BotThou})
	}

	// Step 3: assign each real ply to the single band containing its top
	// elevation.
	for i := 1; i < len(plyDescs); i++ {
		p := plyDescs[i]
		for bi := range bands {
			b := &bands[bi]
			if b.BotThou <= p.TopThou && p.TopThou < b.TopThou {
				b.CutPlanes = append(b.CutPlanes, CutPlane{
					PlyGUID: p.Guid,
					TopThou: p.TopThou,
					PlyI:    PlyIndex(i),
					IsFloor: false,
				})
				break // exactly one band owns each ply
			}
		}
	}

	// Step 4: append one synthetic floor plane per band.
	for bi := range bands {
		bands[bi].CutPlanes = append(bands[bi].CutPlanes, CutPlane{
			TopThou: bands[bi].BotThou,
			IsFloor: true,
		})
	}

	// Step 5: sort planes within each band.
	for bi := range bands {
		planes := bands[bi].CutPlanes
		sort.SliceStable(planes, func(i, j int) bool {
			return planeLess(planes[i], planes[j])
		})
	}

	// Step 6: assign regions to planes by representative-pixel lookup.
	for i := 1; i < len(infos); i++ {
		info := infos[i]
		if !plyImage.InBounds(info.Start.X, info.Start.Y) {
			continue
		}
		plyVal := plyImage.AtUnchecked(info.Start.X, info.Start.Y, 0)
		plane := findPlaneByPly(bands, plyVal)
		if plane == nil {
			continue // missing lookup: skip, non-fatal
		}
		plane.RegionIZ = append(plane.RegionIZ, RegionIndex(i))
	}
	for bi := range bands {
		for pi := range bands[bi].CutPlanes {
			dedupRegions(&bands[bi].CutPlanes[pi].RegionIZ)
		}
	}

	return bands, nil
}

// planeLess orders: dummy planes (PlyI==0, not floor) first, then
// non-floor planes by descending TopThou, then the floor plane last.
func planeLess(a, b CutPlane) bool {
	rank := func(p CutPlane) int {
		switch {
		case p.IsFloor:
			return 2
		case p.PlyI == 0:
			return 0
		default:
			return 1
		}
	}
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra < rb
	}
	if ra == 1 {
		return a.TopThou > b.TopThou
	}
	return false
}

func findPlaneByPly(bands []CutBand, plyVal PlyIndex) *CutPlane {
	for bi := range bands {
		for pi := range bands[bi].CutPlanes {
			plane := &bands[bi].CutPlanes[pi]
			if !plane.IsFloor && plane.PlyI == plyVal {
				return plane
			}
		}
	}
	return nil
}

func dedupRegions(regions *[]RegionIndex) {
	r := *regions
	if len(r) < 2 {
		return
	}
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	out := r[:1]
	for _, v := range r[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	*regions = out
}
