package band

import "github.com/google/uuid"

// Thou is a signed elevation in thousandths of an inch. Ordering is
// numeric; it is used for both ply top elevations and band bounds.
type Thou int32

// PlyIndex identifies a ply. Index 0 is reserved for the dummy ply
// ("below all plies"): elevation 0, Hidden=true.
type PlyIndex uint16

// PlyDesc is the parsed, pre-scaled description of one ply, supplied by
// the upstream composition layer. Mpoly (the ply's polygon footprint) is
// carried as an opaque value: rasterization and polygon offsetting are
// out of scope for this core.
type PlyDesc struct {
	Guid    uuid.UUID
	TopThou Thou
	Hidden  bool
	IsFloor bool
	Mpoly   any
}

// BandDesc describes one elevation interval [BotThou, TopThou) and the
// cut-pass tag that selects it for a given planning run.
type BandDesc struct {
	TopThou Thou
	BotThou Thou
	CutPass string
}

// CutPlane bundles every region belonging to one ply within one band (a
// ply may be discontiguous, hence RegionIZ is a slice). The synthetic
// floor plane has IsFloor=true, PlyI=0, an empty RegionIZ, and TopThou
// equal to its band's BotThou.
type CutPlane struct {
	PlyGUID  uuid.UUID
	TopThou  Thou
	PlyI     PlyIndex
	IsFloor  bool
	RegionIZ []RegionIndex
}

// RegionIndex mirrors label.RegionIndex without importing package label,
// so band stays a leaf relative to the labeller; both are uint16, so
// converting between them at call sites is a single explicit conversion.
type RegionIndex uint16

// CutBand is one elevation band: its own bounds plus the cut planes
// within it, sorted top to bottom with the floor last.
type CutBand struct {
	Desc      BandDesc
	TopThou   Thou
	BotThou   Thou
	CutPlanes []CutPlane
}
