package plan

import (
	"fmt"

	"github.com/rcarve/carveplan/adjacency"
	"github.com/rcarve/carveplan/band"
	"github.com/rcarve/carveplan/label"
	"github.com/rcarve/carveplan/regiontree"
	"github.com/rcarve/carveplan/toolpath"
)

// Plan wires label → adjacency → band → regiontree → toolpath in
// sequence, feeding the output of each stage into the next, and reports
// stage counts to the configured Collector.
func Plan(comp Composition, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	regionImage, infos, err := label.Label(comp.PlyImage)
	if err != nil {
		return Result{}, fmt.Errorf("plan: label: %w", err)
	}
	cfg.collector.OnLabel(len(infos) - 1)
	if err := cfg.ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("plan: %w: %w", ErrCanceled, err)
	}

	graph := adjacency.Build(regionImage)
	for a, row := range graph {
		infos[a].Neighbors = row
	}
	cfg.collector.OnAdjacency(countEdges(graph))
	if err := cfg.ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("plan: %w: %w", ErrCanceled, err)
	}

	bands, err := band.BuildCutBands(comp.CutPass, comp.BandDescs, comp.PlyDescs, comp.PlyImage, infos)
	if err != nil {
		return Result{}, fmt.Errorf("plan: build cut bands: %w", err)
	}
	cfg.collector.OnBands(len(bands))
	if err := cfg.ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("plan: %w: %w", ErrCanceled, err)
	}

	root, err := regiontree.Build(bands, graph)
	if err != nil {
		return Result{}, fmt.Errorf("plan: build region tree: %w", err)
	}
	cfg.collector.OnRegionTree(countCutLeaves(root))
	if err := cfg.ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("plan: %w: %w", ErrCanceled, err)
	}

	paths, err := toolpath.Generate(root, bands, comp.PlyImage, regionImage, infos, comp.ToolDiaPix, comp.StepPix)
	if err != nil {
		return Result{}, fmt.Errorf("plan: generate toolpaths: %w", err)
	}
	cfg.collector.OnPaths(len(paths))

	return Result{Paths: paths}, nil
}

func countEdges(g adjacency.Graph) int {
	total := 0
	for _, row := range g {
		total += len(row)
	}
	return total / 2
}

func countCutLeaves(root regiontree.Root) int {
	n := 0
	regiontree.Walk(root, func(node regiontree.Node) {
		if node.Kind == regiontree.Cut {
			n++
		}
	})
	return n
}
