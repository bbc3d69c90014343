package band

import "errors"

// ErrMissingDummyPly indicates plyDescs[0] is not the reserved dummy ply
// (top_thou=0, hidden=true) BuildCutBands requires as a precondition.
var ErrMissingDummyPly = errors.New("band: ply_descs[0] must be the hidden, zero-elevation dummy ply")
