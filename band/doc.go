// Package band partitions a composition's plies into depth bands and,
// within each band, into discrete cut planes plus a synthetic floor.
//
// BuildCutBands implements spec.md §4.5 exactly: filter bands by cut
// pass, assign each real ply to the single band whose range contains its
// top elevation, append one synthetic floor plane per band, sort planes
// deterministically (dummy-first, descending top elevation, floor last),
// and assign labelled regions to planes by their representative pixel's
// ply value.
package band
