// Package dilate implements binary morphological disc dilation, the one
// primitive the surface toolpath generator needs to turn a region or
// above-mask into the set of tool-tip positions that would touch it.
//
// Two algorithms are available: a windowed neighbour scan for small tool
// diameters, and an exact 2-D squared Euclidean distance transform
// (Felzenszwalb–Huttenlocher) for large ones. Dilate selects between them
// using the fixed crossover table reproduced from the compatibility
// contract; the table is not re-tuned here.
package dilate
