package plan

import (
	"context"

	"github.com/rcarve/carveplan/band"
	"github.com/rcarve/carveplan/rimage"
	"github.com/rcarve/carveplan/toolpath"
)

// Composition bundles the collaborators spec.md §6 describes: the parsed,
// pre-scaled ply descriptions, the requested bands, the rasterised ply
// image, which cut pass to plan, and the tool geometry. Upstream parsing,
// transform/scale, and rasterization produce these; Plan does not.
type Composition struct {
	PlyDescs  []band.PlyDesc
	BandDescs []band.BandDesc
	PlyImage  rimage.Image[band.PlyIndex, rimage.PlyTag]
	CutPass   string

	ToolDiaPix int
	StepPix    int
}

// Result is the output of a planning run.
type Result struct {
	Paths []toolpath.Path
}

// Collector receives diagnostic counts as Plan runs its stages. The
// default is a no-op; callers that want reporting pass WithCollector.
type Collector interface {
	OnLabel(regionCount int)
	OnAdjacency(edgeCount int)
	OnBands(bandCount int)
	OnRegionTree(cutLeafCount int)
	OnPaths(pathCount int)
}

type noopCollector struct{}

func (noopCollector) OnLabel(int)      {}
func (noopCollector) OnAdjacency(int)  {}
func (noopCollector) OnBands(int)      {}
func (noopCollector) OnRegionTree(int) {}
func (noopCollector) OnPaths(int)      {}

// config holds the resolved options for one Plan call.
type config struct {
	collector Collector
	ctx       context.Context
}

// Option configures a Plan call.
type Option func(*config)

// WithCollector threads a diagnostic Collector through Plan in place of
// the default no-op.
func WithCollector(c Collector) Option {
	return func(cfg *config) { cfg.collector = c }
}

// WithContext lets a caller observe cancellation between stages. It is
// polled only at stage boundaries, never inside a stage's inner loops.
func WithContext(ctx context.Context) Option {
	return func(cfg *config) { cfg.ctx = ctx }
}

func defaultConfig() config {
	return config{collector: noopCollector{}, ctx: context.Background()}
}
