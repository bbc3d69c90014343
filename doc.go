// Package carveplan is a CNC carving toolpath planner: given a rasterized,
// labelled height-map of a workpiece (a composition of stacked plies),
// it produces an ordered sequence of horizontal raster clearing passes.
//
// The pipeline runs through a handful of single-purpose packages, each
// consumable independently:
//
//	rimage/     — generic strided image buffers with phantom type tags
//	dilate/     — binary disc dilation (windowed and exact-EDT methods)
//	label/      — 4-connected flood-fill region labelling
//	adjacency/  — shared-border region adjacency graph
//	band/       — cut-band and cut-plane construction
//	regiontree/ — depth-first carve-order tree over bands and regions
//	toolpath/   — per-region raster toolpath generation
//
// plan.Plan wires all of the above into a single call.
package carveplan
