// Package graphcore is a trimmed, renamed adaptation of the teacher
// repository's core graph primitives (vertices, edges, functional
// options), kept only for the surface adjacency.Graph.ToCoreGraph needs to
// hand a region-adjacency graph off to a general-purpose graph structure
// for ad-hoc introspection — the same role gridgraph.ToCoreGraph plays for
// grid structures in the source repository.
package graphcore
