// Package plan orchestrates the full pipeline: labelling, adjacency,
// cut-band construction, region-tree assembly, and toolpath generation.
//
// Plan owns the buffers the later stages share and is the single place a
// Collector is threaded through for diagnostic reporting; every other
// package in this module is a pure function over explicit arguments.
package plan
