package dilate

// crossoverRow is one entry of the window-vs-EDT selection table.
type crossoverRow struct {
	dim int
	dia int
}

// crossoverTable is the exact compatibility contract: scanned top to
// bottom, the first row whose dim <= max(w,h) applies. It must not be
// re-tuned; spec treats it as a fixed table, not a performance knob.
var crossoverTable = []crossoverRow{
	{512, 10}, {496, 12}, {480, 12}, {464, 12}, {448, 12}, {432, 12},
	{416, 13}, {400, 14}, {384, 16}, {368, 14}, {352, 14}, {336, 16},
	{320, 24}, {304, 27}, {288, 27}, {272, 28}, {256, 51}, {240, 45},
	{224, 43}, {208, 40}, {192, 41}, {176, 38}, {160, 36}, {144, 36},
	{128, 34}, {0, 34},
}

// useWindowMethod selects the window method iff D < the crossover diameter
// for the given maximum image dimension.
func useWindowMethod(maxDim, diameter int) bool {
	for _, row := range crossoverTable {
		if row.dim <= maxDim {
			return diameter < row.dia
		}
	}
	// crossoverTable always ends in a {0, ...} row, so this is unreachable.
	return true
}
