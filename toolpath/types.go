package toolpath

import "github.com/rcarve/carveplan/band"

// Point is one vertex of a Path, in pixel coordinates with an elevation.
type Point struct {
	X, Y int
	Z    band.Thou
}

// Path is an ordered polyline executed at a single depth; every Point in
// Points shares Z.
type Path struct {
	Points     []Point
	ToolDiaPix int
}
