// Package adjacency builds the region-adjacency (shared-border) graph from
// a labelled image: for every non-background pixel,
// its right/left/down/up neighbours contribute a directed touch count to
// distinct neighbouring labels, and the result is symmetrised by taking
// the minimum of the two directions, with zero entries pruned from both
// sides.
package adjacency
