package label

import "github.com/rcarve/carveplan/rimage"

// RegionIndex identifies a connected component in a labelled image.
// Index 0 is reserved for background.
type RegionIndex uint16

// maxRegionIndex is the largest component count RegionIndex can represent.
const maxRegionIndex = int(^RegionIndex(0))

// Point is a pixel coordinate.
type Point struct {
	X, Y int
}

// LabelInfo is the per-label record produced by Label: how many pixels the
// component has, its scan-order-first ("representative") pixel, its
// bounding ROI, the flat list of member pixel offsets into the label
// image, and its region-adjacency neighbours (filled by plan.Plan from the
// adjacency.Graph that package adjacency builds; left nil by Label itself).
type LabelInfo struct {
	Size      int
	Start     Point
	ROI       rimage.ROI
	PixelIZ   []int
	Neighbors map[RegionIndex]int
}
