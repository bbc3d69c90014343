// Package rimage provides the tightly-strided 2-D image buffer the rest of
// the planner is built on, plus the handful of drawing helpers used by
// tests and diagnostics.
//
// An Image[T, Tag] owns a flat, contiguous []T of w*h*nch samples, addressed
// by (x, y, channel) through a row stride that may exceed w*nch. Tag is a
// phantom type parameter: it is never read, never stored at runtime, and
// exists only so the compiler can stop a caller from passing a ply-index
// image where a region-index image is expected. Retag reinterprets an
// Image under a new Tag without touching the backing slice.
package rimage
