// Package regiontree builds the depth-first traversal structure that
// expresses "this floor gates access to those deeper regions".
//
// Build partitions each band's planes into Cut leaves (one per
// plane/region pair) and Floor nodes (one per connected component of the
// regions that lie below the band's floor), then nests bands bottom-up so
// that cutting a Floor reveals the Cut and Floor nodes of the band
// beneath it. Walking the resulting Root in depth-first pre-order yields a
// carve sequence that never asks the tool to cut through unremoved
// material.
package regiontree
