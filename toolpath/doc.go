// Package toolpath rasterizes a region tree into an ordered sequence of
// horizontal tool paths.
//
// Generate walks the tree depth-first pre-order. At each Cut leaf it builds
// a region mask and an above-material mask, dilates both by the tool
// diameter, subtracts the above mask from the region mask, and rasters the
// remainder into horizontal scanline runs. Floor nodes emit nothing
// directly; their children carry the paths for the material beneath them.
package toolpath
