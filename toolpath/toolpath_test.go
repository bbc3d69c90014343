package toolpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rcarve/carveplan/band"
	"github.com/rcarve/carveplan/label"
	"github.com/rcarve/carveplan/regiontree"
	"github.com/rcarve/carveplan/rimage"
	"github.com/rcarve/carveplan/toolpath"
)

// TestRasterPartialRow covers Scenario 4: a 6x3 cut mask, D=0, s=1, z=123.
func TestRasterPartialRow(t *testing.T) {
	mask, err := rimage.New[uint8, rimage.Binary](6, 3, 1)
	require.NoError(t, err)
	for _, x := range []int{2, 3, 4} {
		mask.SetUnchecked(x, 0, 0, 255)
	}
	for _, x := range []int{0, 2, 5} {
		mask.SetUnchecked(x, 1, 0, 255)
	}

	paths := toolpath.Raster(mask, rimage.ROI{L: 0, T: 0, R: 6, B: 3}, 0, 1, 123)

	require.Len(t, paths, 4)
	want := [][2]int{{2, 0}, {0, 1}, {2, 1}, {5, 1}}
	for i, p := range paths {
		require.Len(t, p.Points, 2)
		require.Equal(t, want[i][0], p.Points[0].X)
		require.Equal(t, p.Points[0].Y, p.Points[1].Y)
		require.Equal(t, band.Thou(123), p.Points[0].Z)
		require.Equal(t, band.Thou(123), p.Points[1].Z)
	}
	require.Equal(t, 4, paths[0].Points[1].X)
	require.Equal(t, want[1][1], paths[1].Points[0].Y)
}

// TestGenerateAboveMaskBlocksCut covers Scenario 5: a region whose
// dilation is entirely swallowed by the dilation of higher-ply material
// around it produces zero paths.
func TestGenerateAboveMaskBlocksCut(t *testing.T) {
	const w, h = 5, 5

	plyImage, err := rimage.New[band.PlyIndex, rimage.PlyTag](w, h, 1)
	require.NoError(t, err)
	plyImage.Fill(2)
	plyImage.SetUnchecked(2, 2, 0, 1) // the cut region sits one ply below its surroundings

	regionImage, err := rimage.New[label.RegionIndex, rimage.RegionTag](w, h, 1)
	require.NoError(t, err)
	regionImage.SetUnchecked(2, 2, 0, 1)

	infos := []label.LabelInfo{
		{}, // index 0 sentinel
		{
			Start:   label.Point{X: 2, Y: 2},
			ROI:     rimage.ROI{L: 2, T: 2, R: 3, B: 3},
			PixelIZ: []int{regionImage.Width*2 + 2},
		},
	}

	bands := []band.CutBand{
		{TopThou: 100, BotThou: 0, CutPlanes: []band.CutPlane{
			{TopThou: 100, PlyI: 1, RegionIZ: []band.RegionIndex{1}},
			{TopThou: 0, IsFloor: true},
		}},
	}

	root := regiontree.Root{Children: []regiontree.Node{
		{Kind: regiontree.Cut, BandI: 0, CutPlaneI: 0, RegionI: 1},
	}}

	paths, err := toolpath.Generate(root, bands, plyImage, regionImage, infos, 2, 1)
	require.NoError(t, err)
	require.Empty(t, paths, "above-mask dilation should swallow the entire region")
}

// TestGenerateEmitsPathForClearArea is a control case for
// TestGenerateAboveMaskBlocksCut: with no higher-ply material nearby, the
// same single-pixel region produces a path.
func TestGenerateEmitsPathForClearArea(t *testing.T) {
	const w, h = 5, 5

	plyImage, err := rimage.New[band.PlyIndex, rimage.PlyTag](w, h, 1)
	require.NoError(t, err)
	plyImage.SetUnchecked(2, 2, 0, 1)

	regionImage, err := rimage.New[label.RegionIndex, rimage.RegionTag](w, h, 1)
	require.NoError(t, err)
	regionImage.SetUnchecked(2, 2, 0, 1)

	infos := []label.LabelInfo{
		{},
		{
			Start:   label.Point{X: 2, Y: 2},
			ROI:     rimage.ROI{L: 2, T: 2, R: 3, B: 3},
			PixelIZ: []int{regionImage.Width*2 + 2},
		},
	}

	bands := []band.CutBand{
		{TopThou: 100, BotThou: 0, CutPlanes: []band.CutPlane{
			{TopThou: 100, PlyI: 1, RegionIZ: []band.RegionIndex{1}},
			{TopThou: 0, IsFloor: true},
		}},
	}

	root := regiontree.Root{Children: []regiontree.Node{
		{Kind: regiontree.Cut, BandI: 0, CutPlaneI: 0, RegionI: 1},
	}}

	paths, err := toolpath.Generate(root, bands, plyImage, regionImage, infos, 2, 1)
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, p := range paths {
		for _, pt := range p.Points {
			require.Equal(t, band.Thou(100), pt.Z)
		}
	}
}
