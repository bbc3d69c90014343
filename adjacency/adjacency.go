package adjacency

import (
	"strconv"

	"github.com/rcarve/carveplan/internal/graphcore"
	"github.com/rcarve/carveplan/label"
	"github.com/rcarve/carveplan/rimage"
)

// Graph maps a region to the shared-border count of each of its
// non-background neighbours. It is always symmetric: Graph[a][b] ==
// Graph[b][a] for every present edge, and Graph[a][a] never appears.
type Graph map[label.RegionIndex]map[label.RegionIndex]int

// neighborOffsets is the right, left, down, up order spec.md's pass
// requires, matching label.Label's own scan for consistent semantics.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Build scans labels (whose background value is region 0) and produces the
// symmetrised shared-border Graph. Empty or 1-D images produce an empty
// graph.
//
// Each pixel contributes at most one touch count per distinct neighbour
// label: a pixel touching the same neighbour through two directions (e.g.
// a boundary corner) increments touch[a][b] once, not once per direction.
func Build(labels rimage.Image[label.RegionIndex, rimage.RegionTag]) Graph {
	touch := make(map[label.RegionIndex]map[label.RegionIndex]int)
	w, h := labels.Width, labels.Height

	var seenNeighbors [4]label.RegionIndex
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := labels.AtUnchecked(x, y, 0)
			if a == 0 {
				continue
			}
			n := 0
			for _, d := range neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				b := labels.AtUnchecked(nx, ny, 0)
				if b == 0 || b == a {
					continue
				}
				dup := false
				for _, s := range seenNeighbors[:n] {
					if s == b {
						dup = true
						break
					}
				}
				if dup {
					continue
				}
				seenNeighbors[n] = b
				n++
			}
			if n == 0 {
				continue
			}
			if touch[a] == nil {
				touch[a] = make(map[label.RegionIndex]int)
			}
			for _, b := range seenNeighbors[:n] {
				touch[a][b]++
			}
		}
	}

	out := make(Graph, len(touch))
	for a, row := range touch {
		for b, countAB := range row {
			countBA := touch[b][a]
			shared := min(countAB, countBA)
			if shared == 0 {
				continue
			}
			if out[a] == nil {
				out[a] = make(map[label.RegionIndex]int)
			}
			out[a][b] = shared
		}
	}
	return out
}

// Neighbors returns region a's neighbour map, or nil if a has none.
func (g Graph) Neighbors(a label.RegionIndex) map[label.RegionIndex]int {
	return g[a]
}

// ToCoreGraph re-expresses the region-adjacency graph as a
// *graphcore.Graph (vertex ID = region index, undirected weighted edges),
// for ad-hoc introspection and debugging — not used by the planner's hot
// path, mirroring gridgraph.ToCoreGraph's role for grid structures.
func (g Graph) ToCoreGraph() *graphcore.Graph {
	cg := graphcore.NewGraph(graphcore.WithWeighted())
	for a := range g {
		cg.AddVertex(regionVertexID(a))
	}
	seen := make(map[[2]label.RegionIndex]bool)
	for a, row := range g {
		for b, weight := range row {
			key := [2]label.RegionIndex{a, b}
			if a > b {
				key = [2]label.RegionIndex{b, a}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			if cg.HasEdge(regionVertexID(a), regionVertexID(b)) {
				continue
			}
			_, _ = cg.AddEdge(regionVertexID(a), regionVertexID(b), int64(weight))
		}
	}
	return cg
}

func regionVertexID(r label.RegionIndex) string {
	return strconv.FormatUint(uint64(r), 10)
}
