package regiontree

import (
	"github.com/rcarve/carveplan/band"
	"github.com/rcarve/carveplan/label"
)

// Kind distinguishes a Cut leaf from a Floor gate.
type Kind int

const (
	// Cut identifies a leaf node: cut one region at one plane.
	Cut Kind = iota
	// Floor identifies a gate node: cutting it reveals its Children.
	Floor
)

// Node is a region-tree node. Cut fields (BandI, CutPlaneI, RegionI) are
// populated for Kind==Cut; Floor fields (RegionIZ, BottomThou,
// LowestPlyInBand, Children) are populated for Kind==Floor. Go has no sum
// types, so Node is a tagged union rather than two separate structs —
// callers switch on Kind.
type Node struct {
	Kind Kind

	BandI     int
	CutPlaneI int

	// RegionI is set for Kind==Cut: the single region this leaf cuts.
	RegionI label.RegionIndex

	// RegionIZ is set for Kind==Floor: the regions in this floor's
	// connected component of the band's "below" set (sorted ascending),
	// or empty for the degenerate floor of a band with nothing below it.
	RegionIZ []label.RegionIndex

	// BottomThou is set for Kind==Floor: equal to the owning band's
	// BotThou.
	BottomThou band.Thou

	// LowestPlyInBand is set for Kind==Floor: the minimum non-floor PlyI
	// in the owning band.
	LowestPlyInBand band.PlyIndex

	// Children is set for Kind==Floor: the nested band's sibling list,
	// routed here during nesting. Empty-children floors are pruned after
	// nesting completes.
	Children []Node
}

// Root holds the top band's siblings after nesting and pruning.
type Root struct {
	Children []Node
}
