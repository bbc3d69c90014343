package label

import "errors"

// ErrLabelOverflow indicates more connected components were found than
// RegionIndex can represent; this is a fatal precondition violation, not
// something the labeller can recover from mid-scan.
var ErrLabelOverflow = errors.New("label: component count exceeds RegionIndex range")
