// Package label implements 4-connected flood-fill connected-component
// labelling over a one-channel image whose zero sample is background.
//
// Labels are dense (1..N), index 0 is a zero-initialised sentinel so
// RegionIndex can be used directly as a slice subscript, and the scan is
// row-major with an explicit stack (no recursion) per component.
package label
