package band

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rcarve/carveplan/label"
	"github.com/rcarve/carveplan/rimage"
)

func dummyAnd(descs ...PlyDesc) []PlyDesc {
	return append([]PlyDesc{{TopThou: 0, Hidden: true}}, descs...)
}

// Scenario 1 — Band splitting.
func TestBuildCutBandsScenario1(t *testing.T) {
	plyDescs := dummyAnd(
		PlyDesc{Guid: uuid.New(), TopThou: 100},
		PlyDesc{Guid: uuid.New(), TopThou: 400},
		PlyDesc{Guid: uuid.New(), TopThou: 700},
		PlyDesc{Guid: uuid.New(), TopThou: 900},
	)
	bandDescs := []BandDesc{
		{TopThou: 1000, BotThou: 650, CutPass: "rough"},
		{TopThou: 650, BotThou: 0, CutPass: "rough"},
		{TopThou: 1000, BotThou: 0, CutPass: "refine"},
	}
	plyImage, _ := rimage.New[PlyIndex, rimage.PlyTag](1, 1, 1)
	bands, err := BuildCutBands("rough", bandDescs, plyDescs, plyImage, nil)
	if err != nil {
		t.Fatalf("BuildCutBands failed: %v", err)
	}
	if len(bands) != 2 {
		t.Fatalf("got %d bands; want 2", len(bands))
	}
	nonFloorPlyIs := func(b CutBand) []PlyIndex {
		var out []PlyIndex
		for _, p := range b.CutPlanes {
			if !p.IsFloor {
				out = append(out, p.PlyI)
			}
		}
		return out
	}
	if got := nonFloorPlyIs(bands[0]); len(got) != 2 || got[0] != 4 || got[1] != 3 {
		t.Fatalf("band0 plies = %v; want [4 3] (900 and 700 thou)", got)
	}
	if got := nonFloorPlyIs(bands[1]); len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Fatalf("band1 plies = %v; want [2 1] (400 and 100 thou)", got)
	}
	if bands[0].CutPlanes[len(bands[0].CutPlanes)-1].TopThou != 650 {
		t.Fatalf("band0 floor top_thou must equal band.bot_thou=650")
	}
	if bands[1].CutPlanes[len(bands[1].CutPlanes)-1].TopThou != 0 {
		t.Fatalf("band1 floor top_thou must equal band.bot_thou=0")
	}
}

func TestBuildCutBandsInvariants(t *testing.T) {
	plyDescs := dummyAnd(
		PlyDesc{TopThou: 100},
		PlyDesc{TopThou: 200},
	)
	bandDescs := []BandDesc{{TopThou: 300, BotThou: 0, CutPass: "rough"}}
	plyImage, _ := rimage.New[PlyIndex, rimage.PlyTag](1, 1, 1)
	bands, err := BuildCutBands("rough", bandDescs, plyDescs, plyImage, nil)
	if err != nil {
		t.Fatalf("BuildCutBands failed: %v", err)
	}
	for _, b := range bands {
		floors := 0
		for i, p := range b.CutPlanes {
			if p.IsFloor {
				floors++
				if i != len(b.CutPlanes)-1 {
					t.Fatalf("floor plane must be last")
				}
			}
		}
		if floors != 1 {
			t.Fatalf("band must have exactly one floor plane, got %d", floors)
		}
		if b.CutPlanes[len(b.CutPlanes)-1].TopThou != b.BotThou {
			t.Fatalf("floor.top_thou must equal band.bot_thou")
		}
		prev := Thou(1 << 30)
		for _, p := range b.CutPlanes {
			if p.IsFloor {
				continue
			}
			if p.TopThou > prev {
				t.Fatalf("non-floor planes must sort by descending top_thou")
			}
			prev = p.TopThou
		}
	}
}

func TestBuildCutBandsSilentlyDropsUnmatchedPly(t *testing.T) {
	plyDescs := dummyAnd(PlyDesc{TopThou: 5000}) // out of range of the only band
	bandDescs := []BandDesc{{TopThou: 1000, BotThou: 0, CutPass: "rough"}}
	plyImage, _ := rimage.New[PlyIndex, rimage.PlyTag](1, 1, 1)
	bands, err := BuildCutBands("rough", bandDescs, plyDescs, plyImage, nil)
	if err != nil {
		t.Fatalf("BuildCutBands failed: %v", err)
	}
	if len(bands) != 1 || len(bands[0].CutPlanes) != 1 {
		t.Fatalf("unmatched ply should be silently dropped, leaving only the floor plane")
	}
}

func TestBuildCutBandsRejectsMissingDummyPly(t *testing.T) {
	plyDescs := []PlyDesc{{TopThou: 100}} // missing dummy at index 0
	_, err := BuildCutBands("rough", nil, plyDescs, rimage.Image[PlyIndex, rimage.PlyTag]{}, nil)
	if err != ErrMissingDummyPly {
		t.Fatalf("got %v; want ErrMissingDummyPly", err)
	}
}

func TestBuildCutBandsAssignsRegionsByRepresentativePixel(t *testing.T) {
	plyDescs := dummyAnd(PlyDesc{TopThou: 100})
	bandDescs := []BandDesc{{TopThou: 1000, BotThou: 0, CutPass: "rough"}}
	plyImage, _ := rimage.New[PlyIndex, rimage.PlyTag](2, 1, 1)
	plyImage.SetUnchecked(0, 0, 0, 1)
	infos := []label.LabelInfo{
		{}, // sentinel
		{Start: label.Point{X: 0, Y: 0}, Size: 1, PixelIZ: []int{0}},
	}
	bands, err := BuildCutBands("rough", bandDescs, plyDescs, plyImage, infos)
	if err != nil {
		t.Fatalf("BuildCutBands failed: %v", err)
	}
	plane := bands[0].CutPlanes[0]
	if len(plane.RegionIZ) != 1 || plane.RegionIZ[0] != 1 {
		t.Fatalf("region 1 should have been assigned to the ply-1 plane, got %v", plane.RegionIZ)
	}
}
